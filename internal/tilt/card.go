package tilt

import (
	"math"

	"github.com/olivier-w/hiddenleaf/internal/motion"
)

// orbitRadius is the ring radius of hovered particles, as a fraction of the
// card size.
const orbitRadius = 0.4

// Point is a position relative to a card, (0,0) top-left to (1,1)
// bottom-right.
type Point struct {
	X, Y float64
}

// Card is a tilting showcase card with particles that spring out to a ring
// while the pointer is over it.
type Card struct {
	Title    string
	Subtitle string
	Color    string

	bounds  Bounds
	tilt    *Controller
	hovered bool
	orbitX  *motion.SpringField
	orbitY  *motion.SpringField
}

// NewCard returns a card with n orbit particles resting at its centre.
func NewCard(title, subtitle, color string, n int) *Card {
	ox, _ := motion.NewSpringField(motion.Orbit, n, 0.5)
	oy, _ := motion.NewSpringField(motion.Orbit, n, 0.5)
	return &Card{
		Title:    title,
		Subtitle: subtitle,
		Color:    color,
		tilt:     NewController(),
		orbitX:   ox,
		orbitY:   oy,
	}
}

// SetBounds places the card on screen.
func (c *Card) SetBounds(b Bounds) { c.bounds = b }

func (c *Card) Bounds() Bounds { return c.bounds }

func (c *Card) Hovered() bool { return c.hovered }

// OnPointer routes a pointer position to the card. A position outside the
// card while hovered counts as leaving it.
func (c *Card) OnPointer(x, y float64) {
	if c.bounds.Width <= 0 || c.bounds.Height <= 0 {
		return
	}
	if !c.bounds.Contains(x, y) {
		if c.hovered {
			c.OnPointerLeave()
		}
		return
	}
	if !c.hovered {
		c.hovered = true
		c.spread(true)
	}
	c.tilt.OnPointerMove(x, y, c.bounds)
}

// OnPointerLeave resets the card to its neutral pose.
func (c *Card) OnPointerLeave() {
	c.hovered = false
	c.tilt.OnPointerLeave()
	c.spread(false)
}

func (c *Card) spread(out bool) {
	n := c.orbitX.Len()
	for i := range n {
		tx, ty := 0.5, 0.5
		if out {
			angle := float64(i) / float64(n) * 2 * math.Pi
			tx += math.Cos(angle) * orbitRadius
			ty += math.Sin(angle) * orbitRadius
		}
		c.orbitX.SetTarget(i, tx)
		c.orbitY.SetTarget(i, ty)
	}
}

// Update advances the tilt and particle springs by dt seconds.
func (c *Card) Update(dt float64) {
	c.tilt.Update(dt)
	c.orbitX.Update(dt)
	c.orbitY.Update(dt)
}

func (c *Card) Pose() Pose { return c.tilt.Pose() }

// Particles returns the current particle positions.
func (c *Card) Particles() []Point {
	out := make([]Point, c.orbitX.Len())
	for i := range out {
		out[i] = Point{X: c.orbitX.Value(i), Y: c.orbitY.Value(i)}
	}
	return out
}
