package scene

import (
	"math"

	"github.com/olivier-w/hiddenleaf/internal/motion"
)

// LoreScroll is a collapsible text panel that unrolls with a spring.
type LoreScroll struct {
	Title string
	Lines []string

	open   bool
	height *motion.Spring
}

// NewLoreScroll returns a rolled-up scroll.
func NewLoreScroll(title string, lines []string) *LoreScroll {
	return &LoreScroll{
		Title:  title,
		Lines:  lines,
		height: motion.MustSpring(motion.Unroll, 0),
	}
}

// Toggle opens a closed scroll or closes an open one.
func (s *LoreScroll) Toggle() {
	s.open = !s.open
	target := 0.0
	if s.open {
		target = float64(len(s.Lines))
	}
	s.height.SetTarget(target)
}

func (s *LoreScroll) Open() bool { return s.open }

// Update advances the unroll animation by dt seconds.
func (s *LoreScroll) Update(dt float64) { s.height.Update(dt) }

// VisibleLines returns how many content lines are currently unrolled.
func (s *LoreScroll) VisibleLines() int {
	n := int(math.Round(s.height.Value()))
	return max(0, min(n, len(s.Lines)))
}
