package ui

import (
	"strings"

	"github.com/olivier-w/hiddenleaf/internal/tilt"
)

const (
	sectionHeader = 4
	cardHeight    = 9
	cardGap       = 4
	mapHeight     = 9
	loreWrap      = 56
)

// rect is a region of the document in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// pageLayout places every section of the page in document rows. Rows are
// counted from the top of the document, not the viewport.
type pageLayout struct {
	width    int
	hero     int // hero section height
	titleRow int

	loreTop  int
	loreRows []int // toggle row of each scroll

	cardsTop int
	cards    []rect

	villageTop int
	villageMap rect
	gate       rect
	training   rect

	marqueeRow int
	footerRow  int
	height     int
}

func computeLayout(width, viewport int, loreLines []int, cards int) pageLayout {
	l := pageLayout{width: width}
	l.hero = max(viewport, 16)
	l.titleRow = l.hero/2 - 2

	row := l.hero
	l.loreTop = row
	row += sectionHeader
	for _, n := range loreLines {
		l.loreRows = append(l.loreRows, row)
		row += n + 2
	}

	l.cardsTop = row
	row += sectionHeader
	cw := max((width-cardGap*(cards+1))/max(cards, 1), 18)
	for i := range cards {
		l.cards = append(l.cards, rect{x: cardGap + i*(cw+cardGap), y: row, w: cw, h: cardHeight})
	}
	row += cardHeight + 2

	l.villageTop = row
	row += sectionHeader
	mw := min(width-8, 72)
	l.villageMap = rect{x: (width - mw) / 2, y: row, w: mw, h: mapHeight}
	l.gate = rect{x: l.villageMap.x + mw*55/100, y: row + 4, w: 14, h: 4}
	l.training = rect{x: l.villageMap.x + mw*15/100, y: row + 7, w: 12, h: 2}
	row += mapHeight + 2

	l.marqueeRow = row + 1
	row += 3
	l.footerRow = row + 1
	row += 3
	l.height = row
	return l
}

// cardBounds converts the i-th card rectangle to tilt bounds.
func (l pageLayout) cardBounds(i int) tilt.Bounds {
	r := l.cards[i]
	b, err := tilt.NewBounds(float64(r.x), float64(r.y), float64(r.w), float64(r.h))
	if err != nil {
		return tilt.Bounds{}
	}
	return b
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
