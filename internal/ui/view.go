package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/olivier-w/hiddenleaf/internal/ambient"
	"github.com/olivier-w/hiddenleaf/internal/scene"
	"github.com/olivier-w/hiddenleaf/internal/tilt"
	"github.com/olivier-w/hiddenleaf/internal/trail"
)

const leafCount = 20

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "\n  loading…\n"
	}

	vh := m.viewportHeight()
	c := newCanvas(m.width, vh)
	off := int(math.Round(m.scroll.Offset()))

	m.drawBackground(c, off)
	m.drawHero(c, off)
	m.drawLore(c, off)
	m.drawCards(c, off)
	m.drawVillage(c, off)
	m.drawMarquee(c, off)
	c.centered(m.layout.footerRow-off, footerText, mutedPaint)
	m.drawShuriken(c)
	m.drawTrail(c)

	return c.String() + "\n" + m.statusLine() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawBackground paints the lightning flash and the parallax layers: clouds
// and falling leaves are fixed to the viewport and drift against the scroll.
func (m Model) drawBackground(c *canvas, off int) {
	if f := scene.Lightning(m.now.Sub(m.start)); f > 0 {
		flash := paint{fg: lightningSweep.Hex(f)}
		for y := range c.h {
			for x := range c.w {
				c.put(x, y, '░', flash)
			}
		}
	}

	scrollY := m.scroll.Offset()
	clouds := int(math.Round(scene.Layers[0].Offset(scrollY)))
	for i := range 3 {
		y := wrapRow(2+i*7+clouds, c.h)
		x := (i*23 + 5) % max(c.w, 1)
		c.text(x, y, "~~~ ~~~~~ ~~", cloudPaint)
	}

	leaves := scene.Layers[1].Offset(scrollY)
	t := m.now.Sub(m.start).Seconds()
	for i := range leafCount {
		x := (i * 13 % 100) * c.w / 100
		fall := (t + float64(i)*0.6) * 2
		y := wrapRow(int(fall+leaves), c.h)
		c.put(x+int(math.Sin(fall/3)*2), y, '*', leafPaint)
	}

	sil := int(math.Round(scene.Layers[2].Offset(scrollY)))
	y := m.layout.hero - 1 - off + sil
	for x := range c.w {
		c.put(x, y, []rune("▁▂▃▂")[x%4], cloudPaint)
	}
}

func wrapRow(y, h int) int {
	if h <= 0 {
		return 0
	}
	return ((y % h) + h) % h
}

func (m Model) drawHero(c *canvas, off int) {
	row := m.layout.titleRow - off
	x0 := (c.w - len(m.glyphs)) / 2
	for i, g := range m.glyphs {
		f := m.title.Frame(i)
		if !f.Started || g == ' ' {
			continue
		}
		c.put(x0+i, row+int(math.Round(f.Offset)), g, paint{fg: revealSweep.Hex(f.Opacity), bold: true})
	}
	c.centered(row+2, heroSubtitle, textPaint)
	c.centered(row+4, heroButtons, buttonPaint)
}

func (m Model) drawLore(c *canvas, off int) {
	top := m.layout.loreTop - off
	c.centered(top+1, "Legends on the Scroll", headerPaint)
	c.centered(top+2, "Unroll hidden stories, quotes, and lore.", mutedPaint)

	for i, s := range m.lore {
		row := m.layout.loreRows[i] - off
		label := "▸ Unroll the ninja scroll"
		if s.Open() {
			label = "▾ Roll up"
		}
		x := (c.w - loreWrap) / 2
		c.text(x, row, fmt.Sprintf("%s · %s  [%d]", label, s.Title, i+1), scrollPaint)
		for j := range s.VisibleLines() {
			c.text(x+2, row+1+j, s.Lines[j], lorePaint)
		}
	}
}

func (m Model) drawCards(c *canvas, off int) {
	top := m.layout.cardsTop - off
	c.centered(top+1, "Shinobi Showcase", headerPaint)
	c.centered(top+2, "Hover to spark their jutsu.", mutedPaint)

	for i, card := range m.cards {
		r := m.layout.cards[i]
		r.y -= off
		drawCard(c, r, card)
	}
}

// drawCard renders a card as a box whose contents shift with its pose and
// whose edges brighten on the side tilted toward the viewer.
func drawCard(c *canvas, r rect, card *tilt.Card) {
	pose := card.Pose()
	dx := int(math.Round(pose.RotateY / tilt.MaxAngle * 2))
	dy := int(math.Round(-pose.RotateX / tilt.MaxAngle))

	left, right, topEdge, bottom := borderPaint, borderPaint, borderPaint, borderPaint
	if pose.RotateY < 0 {
		left = paint{fg: tiltSweep.Hex(-pose.RotateY)}
	} else {
		right = paint{fg: tiltSweep.Hex(pose.RotateY)}
	}
	if pose.RotateX > 0 {
		topEdge = paint{fg: tiltSweep.Hex(pose.RotateX)}
	} else {
		bottom = paint{fg: tiltSweep.Hex(-pose.RotateX)}
	}

	for x := r.x + 1; x < r.x+r.w-1; x++ {
		c.put(x, r.y, '─', topEdge)
		c.put(x, r.y+r.h-1, '─', bottom)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		c.put(r.x, y, '│', left)
		c.put(r.x+r.w-1, y, '│', right)
	}
	c.put(r.x, r.y, '╭', topEdge)
	c.put(r.x+r.w-1, r.y, '╮', topEdge)
	c.put(r.x, r.y+r.h-1, '╰', bottom)
	c.put(r.x+r.w-1, r.y+r.h-1, '╯', bottom)

	accent := paint{fg: card.Color, bold: true}
	if card.Hovered() || !atRest(card.Particles()) {
		for _, p := range card.Particles() {
			px := r.x + 1 + int(math.Round(p.X*float64(r.w-3)))
			py := r.y + 1 + int(math.Round(p.Y*float64(r.h-3)))
			c.put(px, py, '•', accent)
		}
	}

	mid := r.x + r.w/2 + dx
	row := r.y + r.h/2 - 1 + dy
	c.put(mid, row-1, '✦', accent)
	c.text(mid-len([]rune(card.Title))/2, row+1, card.Title, paint{fg: "#ffffff", bold: true})
	sub := truncate(card.Subtitle, r.w-4)
	c.text(mid-len([]rune(sub))/2, row+2, sub, textPaint)
	if card.Hovered() {
		label := fmt.Sprintf("rx %+.1f° ry %+.1f°", pose.RotateX, pose.RotateY)
		c.text(r.x+2, r.y+r.h-2, label, mutedPaint)
	}
}

func atRest(pts []tilt.Point) bool {
	for _, p := range pts {
		if math.Abs(p.X-0.5) > 0.02 || math.Abs(p.Y-0.5) > 0.02 {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func (m Model) drawVillage(c *canvas, off int) {
	top := m.layout.villageTop - off
	c.centered(top+1, "Konoha Village", paint{fg: colorVillage, bold: true})
	c.centered(top+2, "Click the gate to open it. Click the training grounds to summon a shadow clone.", villagePaint)

	mp := m.layout.villageMap
	mp.y -= off
	t := m.now.Sub(m.start).Seconds()

	// Mountains bob on a slow loop, birds drift.
	bob := int(math.Round(math.Sin(t*2*math.Pi/12) * 0.6))
	ridge := []rune("▁▂▄▆▅▃▂▃▅▇▆▄▂▁▂▄▅▃▂")
	for x := range mp.w {
		c.put(mp.x+x, mp.y+3+bob, ridge[x%len(ridge)], mountPaint)
	}
	birds := mp.x + mp.w*85/100 + int(math.Round(math.Sin(t*2*math.Pi/6)*2))
	c.text(birds, mp.y+1, "v  v", textPaint)

	for _, hx := range []int{8, 19, 30} {
		c.text(mp.x+mp.w*hx/100, mp.y+5, "▟██▙", housePaint)
		c.text(mp.x+mp.w*hx/100, mp.y+6, "█▒▒█", housePaint)
	}

	g := m.layout.gate
	g.y -= off
	l, r := m.gate.Doors()
	c.text(g.x, g.y, "┏━━━━━━━━━━━━┓", gatePaint)
	c.text(g.x+1+int(math.Round(l)), g.y+1, "▐██▌", gatePaint)
	c.text(g.x+g.w-5+int(math.Round(r)), g.y+1, "▐██▌", gatePaint)
	c.text(g.x+1+int(math.Round(l)), g.y+2, "▐██▌", gatePaint)
	c.text(g.x+g.w-5+int(math.Round(r)), g.y+2, "▐██▌", gatePaint)
	c.text(g.x+3, g.y+3, "Leaf Gate", villagePaint)

	tr := m.layout.training
	tr.y -= off
	c.text(tr.x, tr.y, "(  Training  )", villagePaint)
	if m.clone.Visible(m.now) {
		glyph := "☺"
		if m.clone.Scale(m.now) > 1.1 {
			glyph = "☻"
		}
		c.text(tr.x+5, tr.y-1, glyph+glyph, clonePaint)
	}
}

func (m Model) drawMarquee(c *canvas, off int) {
	line := m.marquee.Window(m.now.Sub(m.start), c.w)
	c.text(0, m.layout.marqueeRow-off, strings.ToUpper(line), paint{fg: colorGlow, bold: true})
}

func (m Model) drawShuriken(c *canvas) {
	s := scene.ShurikenAt(m.scroll.Progress(), c.w, c.h)
	if !s.Visible(c.w, c.h) {
		return
	}
	c.put(int(s.X), int(s.Y), s.Glyph(), starPaint)
}

// drawTrail renders live trail particles with an ease-out fade: large faint
// rings for old particles, small bright dots for new ones.
func (m Model) drawTrail(c *canvas) {
	for _, p := range m.trail.Live() {
		opacity, scale := trail.Fade(m.trail.Progress(p, m.now))
		glyph := '•'
		switch {
		case scale < 1.2:
			glyph = '·'
		case scale > 2:
			glyph = '○'
		}
		c.put(int(p.X), int(p.Y), glyph, paint{fg: trailSweep.Hex(opacity)})
	}
	if x, y, ok := m.pointer.Position(); ok {
		c.put(int(x), int(y), '✧', paint{fg: colorGlow, bold: true})
	}
}

func (m Model) statusLine() string {
	var sound string
	switch {
	case m.soundPending:
		sound = m.spinner.View() + " Sound: starting"
	case m.soundState == ambient.Enabled:
		sound = soundOnStyle.Render("♪ Sound: On")
	default:
		sound = statusStyle.Render("Sound: Off")
	}
	if m.soundErr != "" {
		sound += "  " + errorStyle.Render(truncate(m.soundErr, max(10, m.width/2)))
	}

	bar := m.progress.ViewAs(m.scroll.Progress())
	pct := statusStyle.Render(fmt.Sprintf("%3d%%", int(m.scroll.Progress()*100)))
	return "  " + sound + "  " + bar + " " + pct + statusStyle.Render("  "+elapsedLabel(m.now.Sub(m.start)))
}

func elapsedLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
