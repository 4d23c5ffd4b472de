// Package reveal staggers entrance animations across a sequence of
// elements.
package reveal

import (
	"time"

	"github.com/olivier-w/hiddenleaf/internal/motion"
)

const (
	// PerElementDelay separates the start of consecutive entrances.
	PerElementDelay = 30 * time.Millisecond
	// Rise is how many rows below its resting place an element starts.
	Rise = 4.0
)

// Delays returns the start delay of each of n elements: i * perElement.
func Delays(n int, perElement time.Duration) []time.Duration {
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = time.Duration(i) * perElement
	}
	return out
}

// Glyphs splits text into its characters, one element per rune.
func Glyphs(text string) []rune {
	return []rune(text)
}

// Frame is the state of one element's entrance.
type Frame struct {
	Offset  float64 // rows below the resting place
	Opacity float64
	Started bool
}

// Sequence animates the staggered entrance of n elements. Every element
// shares the same spring; only its start time differs.
type Sequence struct {
	delays  []time.Duration
	offset  *motion.SpringField
	opacity *motion.SpringField
	elapsed time.Duration
}

// NewSequence returns a sequence of n elements, none started.
func NewSequence(n int, perElement time.Duration) *Sequence {
	offset, _ := motion.NewSpringField(motion.Reveal, n, Rise)
	opacity, _ := motion.NewSpringField(motion.Reveal, n, 0)
	return &Sequence{
		delays:  Delays(n, perElement),
		offset:  offset,
		opacity: opacity,
	}
}

func (s *Sequence) Len() int { return len(s.delays) }

// Advance moves the sequence forward by dt, starting every element whose
// delay has passed and integrating the springs.
func (s *Sequence) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	for i, d := range s.delays {
		if s.elapsed >= d {
			s.offset.SetTarget(i, 0)
			s.opacity.SetTarget(i, 1)
		}
	}
	sec := dt.Seconds()
	s.offset.Update(sec)
	s.opacity.Update(sec)
}

// Frame returns the entrance state of element i.
func (s *Sequence) Frame(i int) Frame {
	op := s.opacity.Value(i)
	if op < 0 {
		op = 0
	} else if op > 1 {
		op = 1
	}
	return Frame{
		Offset:  s.offset.Value(i),
		Opacity: op,
		Started: s.elapsed >= s.delays[i],
	}
}

// Done reports whether every element has started and come to rest.
func (s *Sequence) Done() bool {
	if len(s.delays) == 0 {
		return true
	}
	if s.elapsed < s.delays[len(s.delays)-1] {
		return false
	}
	for i := range s.delays {
		f := s.Frame(i)
		if f.Offset > 0.05 || f.Offset < -0.05 || f.Opacity < 0.99 {
			return false
		}
	}
	return true
}
