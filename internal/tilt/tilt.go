// Package tilt computes the pointer-driven 3D rotation of a rectangular
// surface.
package tilt

import (
	"errors"
	"fmt"

	"github.com/olivier-w/hiddenleaf/internal/input"
	"github.com/olivier-w/hiddenleaf/internal/motion"
)

// MaxAngle is the largest rotation, in degrees, on either axis.
const MaxAngle = 10

// ErrInvalidBounds is returned for a surface with non-positive size.
var ErrInvalidBounds = errors.New("surface width and height must be positive")

var (
	rotateYMapping = motion.MustMapping(0, 1, -MaxAngle, MaxAngle)
	// Inverted so the surface tilts toward the pointer.
	rotateXMapping = motion.MustMapping(0, 1, MaxAngle, -MaxAngle)
)

// Bounds is the on-screen rectangle of a surface.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// NewBounds validates and returns a Bounds.
func NewBounds(left, top, width, height float64) (Bounds, error) {
	if !(width > 0) || !(height > 0) {
		return Bounds{}, fmt.Errorf("size %gx%g: %w", width, height, ErrInvalidBounds)
	}
	return Bounds{Left: left, Top: top, Width: width, Height: height}, nil
}

// Contains reports whether (x, y) lies inside b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Left+b.Width && y >= b.Top && y < b.Top+b.Height
}

// Pose is a rotation pair in degrees.
type Pose struct {
	RotateX float64
	RotateY float64
}

// Controller turns pointer positions over a surface into a smoothed Pose.
type Controller struct {
	px, py float64
	rx, ry *motion.Spring
}

// NewController returns a controller resting in the neutral pose.
func NewController() *Controller {
	c := &Controller{
		rx: motion.MustSpring(motion.Tilt, 0),
		ry: motion.MustSpring(motion.Tilt, 0),
	}
	c.OnPointerLeave()
	return c
}

// OnPointerMove sets the raw input from a pointer position over b.
// Positions outside b produce raw values outside [0,1]; the resulting
// target angles are still clamped to ±MaxAngle by the mapping.
func (c *Controller) OnPointerMove(clientX, clientY float64, b Bounds) {
	px, py := input.SurfaceSignal(clientX, clientY, b.Left, b.Top, b.Width, b.Height)
	c.setRaw(px, py)
}

// OnPointerLeave returns the raw input to the centre so the pose eases back
// to neutral.
func (c *Controller) OnPointerLeave() {
	c.setRaw(0.5, 0.5)
}

func (c *Controller) setRaw(px, py float64) {
	c.px, c.py = px, py
	c.rx.SetTarget(rotateXMapping.Apply(py))
	c.ry.SetTarget(rotateYMapping.Apply(px))
}

// Update advances both springs by dt seconds and returns the new pose.
func (c *Controller) Update(dt float64) Pose {
	c.rx.Update(dt)
	c.ry.Update(dt)
	return c.Pose()
}

// Pose returns the current smoothed rotation.
func (c *Controller) Pose() Pose {
	return Pose{RotateX: c.rx.Value(), RotateY: c.ry.Value()}
}

// Target returns the pose the springs are moving toward.
func (c *Controller) Target() Pose {
	return Pose{RotateX: c.rx.Target(), RotateY: c.ry.Target()}
}

// Raw returns the last normalised pointer position, unclamped.
func (c *Controller) Raw() (px, py float64) {
	return c.px, c.py
}
