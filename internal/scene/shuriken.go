package scene

import "github.com/olivier-w/hiddenleaf/internal/motion"

var (
	shurikenX      = motion.MustMapping(0, 1, -0.1, 1.1)
	shurikenY      = motion.MustMapping(0, 1, 0.1, 0.7)
	shurikenRotate = motion.MustMapping(0, 1, 0, 1440)

	shurikenGlyphs = []rune{'✚', '✖'}
)

// Shuriken is the star that flies across the viewport as the page scrolls.
type Shuriken struct {
	X, Y     float64 // viewport cells, may be off screen
	Rotation float64 // degrees
}

// ShurikenAt places the shuriken for scroll progress p in a viewport of the
// given size.
func ShurikenAt(progress float64, width, height int) Shuriken {
	return Shuriken{
		X:        shurikenX.Apply(progress) * float64(width),
		Y:        shurikenY.Apply(progress) * float64(height),
		Rotation: shurikenRotate.Apply(progress),
	}
}

// Glyph returns the character for the current rotation; it alternates every
// 45 degrees.
func (s Shuriken) Glyph() rune {
	step := int(s.Rotation/45) % len(shurikenGlyphs)
	if step < 0 {
		step += len(shurikenGlyphs)
	}
	return shurikenGlyphs[step]
}

// Visible reports whether the shuriken is inside a width x height viewport.
func (s Shuriken) Visible(width, height int) bool {
	return s.X >= 0 && s.X < float64(width) && s.Y >= 0 && s.Y < float64(height)
}
