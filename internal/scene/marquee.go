package scene

import (
	"strings"
	"time"
)

// Marquee scrolls a repeating line of text at a fixed speed.
type Marquee struct {
	text  []rune
	speed float64 // cells per second
}

func NewMarquee(text string, cellsPerSecond float64) Marquee {
	return Marquee{text: []rune(text), speed: cellsPerSecond}
}

// Window returns width cells of the strip at elapsed time.
func (m Marquee) Window(elapsed time.Duration, width int) string {
	n := len(m.text)
	if n == 0 || width <= 0 {
		return ""
	}
	start := int(elapsed.Seconds()*m.speed) % n
	if start < 0 {
		start += n
	}
	var sb strings.Builder
	for i := range width {
		sb.WriteRune(m.text[(start+i)%n])
	}
	return sb.String()
}
