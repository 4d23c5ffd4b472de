package scene

import (
	"time"

	"github.com/olivier-w/hiddenleaf/internal/motion"
)

// GateSwing is how far, in cells, each door slides when the gate opens.
const GateSwing = 6

// Gate is the village gate: two doors that slide apart on a spring.
type Gate struct {
	open  bool
	left  *motion.Spring
	right *motion.Spring
}

func NewGate() *Gate {
	return &Gate{
		left:  motion.MustSpring(motion.Gate, 0),
		right: motion.MustSpring(motion.Gate, 0),
	}
}

// Toggle opens or closes the gate.
func (g *Gate) Toggle() {
	g.open = !g.open
	swing := 0.0
	if g.open {
		swing = GateSwing
	}
	g.left.SetTarget(-swing)
	g.right.SetTarget(swing)
}

func (g *Gate) Open() bool { return g.open }

func (g *Gate) Update(dt float64) {
	g.left.Update(dt)
	g.right.Update(dt)
}

// Doors returns the horizontal offsets of the left and right doors.
func (g *Gate) Doors() (left, right float64) {
	return g.left.Value(), g.right.Value()
}

// CloneDuration is how long a summoned shadow clone stays.
const CloneDuration = 1200 * time.Millisecond

// Clone is the shadow clone summoned at the training grounds.
type Clone struct {
	summoned time.Time
}

// Summon makes the clone appear at now, restarting any running summon.
func (c *Clone) Summon(now time.Time) { c.summoned = now }

// Visible reports whether the clone is shown at now.
func (c *Clone) Visible(now time.Time) bool {
	if c.summoned.IsZero() {
		return false
	}
	age := now.Sub(c.summoned)
	return age >= 0 && age < CloneDuration
}

// Scale returns the clone's pulse at now: 1 -> 1.2 -> 1 over its lifetime.
func (c *Clone) Scale(now time.Time) float64 {
	if !c.Visible(now) {
		return 0
	}
	t := float64(now.Sub(c.summoned)) / float64(CloneDuration)
	if t < 0.5 {
		return motion.Map(t, 0, 0.5, 1, 1.2)
	}
	return motion.Map(t, 0.5, 1, 1.2, 1)
}
