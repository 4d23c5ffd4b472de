package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/hiddenleaf/internal/ambient"
	"github.com/olivier-w/hiddenleaf/internal/config"
	"github.com/olivier-w/hiddenleaf/internal/input"
	"github.com/olivier-w/hiddenleaf/internal/reveal"
	"github.com/olivier-w/hiddenleaf/internal/scene"
	"github.com/olivier-w/hiddenleaf/internal/tilt"
	"github.com/olivier-w/hiddenleaf/internal/trail"
)

const (
	wheelStep = 3
	// chromeRows are the status and help lines below the page.
	chromeRows = 2
)

// Model is the Bubbletea model for the showcase.
type Model struct {
	cfg    config.Config
	logger *log.Logger
	keys   keyMap

	width    int
	height   int
	quitting bool

	events  input.Queue
	pointer input.PointerSignal
	scroll  input.ScrollSignal
	layout  pageLayout

	trail     *trail.Manager
	trailOn   bool
	cards     []*tilt.Card
	glyphs    []rune
	title     *reveal.Sequence
	lore      []*scene.LoreScroll
	gate      *scene.Gate
	clone     scene.Clone
	marquee   scene.Marquee
	start     time.Time
	lastFrame time.Time
	now       time.Time

	sound        *ambient.Engine
	soundState   ambient.State
	soundPending bool
	soundErr     string

	spinner  spinner.Model
	progress progress.Model
	help     help.Model
}

// New creates the showcase model. The engine is owned by the caller, which
// must Close it on exit; the model also disables it when quitting.
func New(cfg config.Config, sound *ambient.Engine, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	now := time.Now()

	glyphs := reveal.Glyphs(cfg.Title)
	lore := make([]*scene.LoreScroll, len(loreEntries))
	for i, e := range loreEntries {
		lore[i] = scene.NewLoreScroll(e.title, wrap(e.content, loreWrap))
	}
	cards := make([]*tilt.Card, len(cardEntries))
	for i, e := range cardEntries {
		cards[i] = tilt.NewCard(e.title, e.subtitle, e.color, cardParticles)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorChakra))

	p := progress.New(
		progress.WithScaledGradient(colorChakra, "#F87171"),
		progress.WithoutPercentage(),
	)
	p.Width = 20

	return Model{
		cfg:          cfg,
		logger:       logger,
		keys:         newKeyMap(),
		events:       input.Queue{},
		trail:        trail.New(),
		trailOn:      !cfg.ReducedTrail,
		cards:        cards,
		glyphs:       glyphs,
		title:        reveal.NewSequence(len(glyphs), reveal.PerElementDelay),
		lore:         lore,
		gate:         scene.NewGate(),
		marquee:      scene.NewMarquee(marqueeText, 8),
		start:        now,
		lastFrame:    now,
		now:          now,
		sound:        sound,
		soundPending: cfg.Sound && sound != nil,
		spinner:      s,
		progress:     p,
		help:         help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.cfg.FrameInterval()), tea.SetWindowTitle(m.cfg.Title)}
	if m.soundPending {
		cmds = append(cmds, toggleSoundCmd(m.sound), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.events.Push(input.Event{Kind: input.PointerLeave, At: time.Now()})
		return m, nil

	case frameMsg:
		m.frame(time.Time(msg))
		return m, frameCmd(m.cfg.FrameInterval())

	case soundToggledMsg:
		m.soundPending = false
		m.soundState = msg.state
		if msg.err != nil {
			m.soundErr = fmt.Sprintf("Sound unavailable: %v", msg.err)
			m.logger.Printf("sound toggle failed: %v", msg.err)
		} else {
			m.soundErr = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.soundPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(30, msg.Width/4))
		m.relayout()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	page := float64(max(1, m.viewportHeight()-2))
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.sound != nil {
			m.sound.Close()
		}
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Sound):
		if m.sound == nil || m.soundPending {
			return m, nil
		}
		return m, tea.Batch(m.requestSoundToggle()...)
	case key.Matches(msg, m.keys.Down):
		m.pushScroll(1)
	case key.Matches(msg, m.keys.Up):
		m.pushScroll(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.pushScroll(page)
	case key.Matches(msg, m.keys.PageUp):
		m.pushScroll(-page)
	case key.Matches(msg, m.keys.Top):
		m.pushScroll(-m.scroll.Offset())
	case key.Matches(msg, m.keys.Bottom):
		m.pushScroll(float64(m.layout.height))
	case key.Matches(msg, m.keys.Scroll1):
		m.lore[0].Toggle()
	case key.Matches(msg, m.keys.Scroll2):
		m.lore[1].Toggle()
	case key.Matches(msg, m.keys.Gate):
		m.gate.Toggle()
	case key.Matches(msg, m.keys.Clone):
		m.clone.Summon(m.now)
	case key.Matches(msg, m.keys.Trail):
		m.trailOn = !m.trailOn
		if !m.trailOn {
			m.trail.Reset()
		}
	}
	return m, nil
}

func (m *Model) requestSoundToggle() []tea.Cmd {
	m.soundPending = true
	return []tea.Cmd{toggleSoundCmd(m.sound), m.spinner.Tick}
}

// handleMouse records input as events; they take effect on the next frame.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := time.Now()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.events.Push(input.Event{Kind: input.Scroll, DeltaY: -wheelStep, At: now})
	case msg.Button == tea.MouseButtonWheelDown:
		m.events.Push(input.Event{Kind: input.Scroll, DeltaY: wheelStep, At: now})
	case msg.Action == tea.MouseActionMotion:
		m.events.Push(input.Event{Kind: input.PointerMove, X: float64(msg.X), Y: float64(msg.Y), At: now})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.events.Push(input.Event{Kind: input.PointerMove, X: float64(msg.X), Y: float64(msg.Y), At: now})
		m.click(msg.X, msg.Y+int(m.scroll.Offset()))
	}
}

func (m *Model) pushScroll(delta float64) {
	m.events.Push(input.Event{Kind: input.Scroll, DeltaY: delta, At: time.Now()})
}

// click handles a press at document coordinates.
func (m *Model) click(x, y int) {
	for i, row := range m.layout.loreRows {
		if y == row {
			m.lore[i].Toggle()
			return
		}
	}
	if m.layout.gate.contains(x, y) {
		m.gate.Toggle()
		return
	}
	if m.layout.training.contains(x, y) {
		m.clone.Summon(m.now)
	}
}

// frame drains queued input in delivery order, then advances every
// animation by the time since the previous frame.
func (m *Model) frame(now time.Time) {
	elapsed := now.Sub(m.lastFrame)
	if elapsed < 0 {
		elapsed = 0
	}
	m.lastFrame = now
	m.now = now
	dt := elapsed.Seconds()

	for _, e := range m.events.Drain() {
		m.apply(e)
	}

	m.trail.Tick(now)
	for _, c := range m.cards {
		c.Update(dt)
	}
	m.title.Advance(elapsed)
	for _, s := range m.lore {
		s.Update(dt)
	}
	m.gate.Update(dt)
}

func (m *Model) apply(e input.Event) {
	switch e.Kind {
	case input.Scroll:
		m.scroll.ScrollBy(e.DeltaY)
	case input.PointerMove:
		m.pointer.Set(e.X, e.Y)
		if m.trailOn {
			m.trail.OnPointerMove(e.X, e.Y, e.At)
		}
		docY := e.Y + m.scroll.Offset()
		for _, c := range m.cards {
			c.OnPointer(e.X, docY)
		}
	case input.PointerLeave:
		m.pointer.Clear()
		for _, c := range m.cards {
			c.OnPointerLeave()
		}
	}
}

func (m *Model) viewportHeight() int {
	return max(1, m.height-chromeRows)
}

func (m *Model) relayout() {
	lines := make([]int, len(m.lore))
	for i, s := range m.lore {
		lines[i] = len(s.Lines)
	}
	m.layout = computeLayout(m.width, m.viewportHeight(), lines, len(m.cards))
	for i, c := range m.cards {
		c.SetBounds(m.layout.cardBounds(i))
	}
	m.scroll.Resize(float64(m.layout.height), float64(m.viewportHeight()))
}

// SoundState reports whether ambient sound is on.
func (m Model) SoundState() ambient.State { return m.soundState }
