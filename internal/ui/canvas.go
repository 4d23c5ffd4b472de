package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// paint is the colouring of one cell. It is comparable so runs of equal
// paint render with a single style.
type paint struct {
	fg   string
	bold bool
}

type cell struct {
	r rune
	p paint
}

// canvas is a fixed-size grid of cells drawn back to front.
type canvas struct {
	w, h   int
	cells  []cell
	styles map[paint]lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:      max(w, 0),
		h:      max(h, 0),
		styles: make(map[paint]lipgloss.Style),
	}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// put draws r at (x, y); cells outside the canvas are ignored.
func (c *canvas) put(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, p: p}
}

// text draws s starting at (x, y).
func (c *canvas) text(x, y int, s string, p paint) {
	for _, r := range s {
		c.put(x, y, r, p)
		x++
	}
}

// centered draws s centred on row y.
func (c *canvas) centered(y int, s string, p paint) {
	c.text((c.w-len([]rune(s)))/2, y, s, p)
}

func (c *canvas) style(p paint) lipgloss.Style {
	if st, ok := c.styles[p]; ok {
		return st
	}
	st := lipgloss.NewStyle().Bold(p.bold)
	if p.fg != "" {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	c.styles[p] = st
	return st
}

func (c *canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := range c.h {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			p := row[x].p
			run.Reset()
			for x < len(row) && row[x].p == p {
				run.WriteRune(row[x].r)
				x++
			}
			if p == (paint{}) {
				out.WriteString(run.String())
				continue
			}
			out.WriteString(c.style(p).Render(run.String()))
		}
	}
	return out.String()
}
