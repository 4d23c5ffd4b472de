// Package scene holds the scroll- and time-driven decorations of the
// showcase page.
package scene

import "github.com/olivier-w/hiddenleaf/internal/motion"

// parallaxDistance is the scroll offset, in rows, over which a layer moves
// its full Speed.
const parallaxDistance = 1000

// ParallaxLayer is a background layer that drifts against the scroll.
type ParallaxLayer struct {
	Name  string
	Speed float64
}

// Layers are the page backgrounds, far to near.
var Layers = []ParallaxLayer{
	{Name: "clouds", Speed: 0.02},
	{Name: "leaves", Speed: 0.06},
	{Name: "silhouettes", Speed: 0.12},
}

// Offset returns the layer's vertical shift, in rows, at scroll offset y.
func (l ParallaxLayer) Offset(scrollY float64) float64 {
	return motion.Map(scrollY, 0, parallaxDistance, 0, -parallaxDistance*l.Speed)
}
