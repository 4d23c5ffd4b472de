package ui

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/hiddenleaf/internal/ambient"
	"github.com/olivier-w/hiddenleaf/internal/config"
)

type testSink struct {
	mu     sync.Mutex
	err    error
	voices int
}

type testVoice struct{}

func (testVoice) Play()        {}
func (testVoice) Close() error { return nil }

func (s *testSink) Open(io.Reader) (ambient.Voice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.voices++
	return testVoice{}, nil
}

func testConfig() config.Config {
	return config.Config{FPS: 60, Title: "Enter the Hidden Leaf"}
}

func sizedModel(t *testing.T, sound *ambient.Engine) Model {
	t.Helper()
	m := New(testConfig(), sound, nil)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func nextFrame(m Model, d time.Duration) Model {
	m, _ = m.handleMsg(frameMsg(m.now.Add(d)))
	return m
}

func TestPointerMoveIsQueuedUntilFrame(t *testing.T) {
	m := sizedModel(t, nil)
	m, _ = m.handleMsg(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if got := m.trail.Len(); got != 0 {
		t.Fatalf("expected no trail particles before frame, got %d", got)
	}
	if got := m.events.Len(); got != 1 {
		t.Fatalf("expected 1 queued event, got %d", got)
	}

	m = nextFrame(m, 16*time.Millisecond)
	if got := m.trail.Len(); got != 1 {
		t.Fatalf("expected 1 trail particle after frame, got %d", got)
	}
	if got := m.events.Len(); got != 0 {
		t.Fatalf("expected queue drained, got %d", got)
	}
}

func TestBlurReleasesCards(t *testing.T) {
	m := sizedModel(t, nil)
	r := m.layout.cards[0]
	m.scroll.ScrollTo(float64(r.y))
	m, _ = m.handleMsg(tea.MouseMsg{X: r.x + 1, Y: 1, Action: tea.MouseActionMotion})
	m = nextFrame(m, 16*time.Millisecond)
	if !m.cards[0].Hovered() {
		t.Fatal("expected card hovered")
	}

	m, _ = m.handleMsg(tea.BlurMsg{})
	m = nextFrame(m, 16*time.Millisecond)
	if m.cards[0].Hovered() {
		t.Fatal("expected hover cleared after blur")
	}
	if _, _, ok := m.pointer.Position(); ok {
		t.Fatal("expected pointer cleared after blur")
	}
}

func TestReducedTrailSpawnsNothing(t *testing.T) {
	cfg := testConfig()
	cfg.ReducedTrail = true
	m := New(cfg, nil, nil)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.handleMsg(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	m = nextFrame(m, 16*time.Millisecond)
	if got := m.trail.Len(); got != 0 {
		t.Fatalf("expected no particles with trail off, got %d", got)
	}
}

func TestWheelScrollsOnFrame(t *testing.T) {
	m := sizedModel(t, nil)
	m, _ = m.handleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m, _ = m.handleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.scroll.Offset(); got != 0 {
		t.Fatalf("expected scroll to wait for frame, got %v", got)
	}
	m = nextFrame(m, 16*time.Millisecond)
	if got := m.scroll.Offset(); got != 2*wheelStep {
		t.Fatalf("expected offset %d, got %v", 2*wheelStep, got)
	}

	m, _ = m.handleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = nextFrame(m, 16*time.Millisecond)
	if got := m.scroll.Offset(); got != wheelStep {
		t.Fatalf("expected offset %d, got %v", wheelStep, got)
	}
}

func TestClickTogglesLoreScroll(t *testing.T) {
	m := sizedModel(t, nil)
	m.click(m.width/2, m.layout.loreRows[0])
	if !m.lore[0].Open() {
		t.Fatal("expected first scroll to open")
	}
	if m.lore[1].Open() {
		t.Fatal("expected second scroll to stay closed")
	}
	m.click(m.width/2, m.layout.loreRows[0])
	if m.lore[0].Open() {
		t.Fatal("expected first scroll to close on second click")
	}
}

func TestClickGateAndTraining(t *testing.T) {
	m := sizedModel(t, nil)
	g := m.layout.gate
	m.click(g.x+1, g.y+1)
	if !m.gate.Open() {
		t.Fatal("expected gate to open")
	}

	tr := m.layout.training
	m.click(tr.x+1, tr.y)
	if !m.clone.Visible(m.now) {
		t.Fatal("expected clone to be visible after summon")
	}
	if m.clone.Visible(m.now.Add(2 * time.Second)) {
		t.Fatal("expected clone to vanish")
	}
}

func TestSoundToggleFailureIsNotFatal(t *testing.T) {
	sink := &testSink{err: errors.New("no audio device")}
	engine, err := ambient.NewEngine(ambient.DefaultConfig(), sink, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close()

	m := sizedModel(t, engine)
	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if cmd == nil || !m.soundPending {
		t.Fatal("expected pending sound toggle")
	}

	msg := toggleSoundCmd(engine)()
	m, _ = m.handleMsg(msg)
	if m.soundPending {
		t.Fatal("expected toggle to settle")
	}
	if m.soundState != ambient.Disabled {
		t.Fatalf("expected sound off, got %v", m.soundState)
	}
	if !strings.Contains(m.soundErr, "no audio device") {
		t.Fatalf("expected error surfaced, got %q", m.soundErr)
	}
	if m.quitting {
		t.Fatal("sound failure must not quit")
	}
}

func TestSoundToggleRoundTrip(t *testing.T) {
	sink := &testSink{}
	engine, err := ambient.NewEngine(ambient.DefaultConfig(), sink, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close()

	m := sizedModel(t, engine)
	m, _ = m.handleMsg(toggleSoundCmd(engine)())
	if m.SoundState() != ambient.Enabled || !engine.Enabled() {
		t.Fatal("expected sound on")
	}
	m, _ = m.handleMsg(toggleSoundCmd(engine)())
	if m.SoundState() != ambient.Disabled || engine.Enabled() {
		t.Fatal("expected sound off")
	}
}

func TestQuitClosesEngine(t *testing.T) {
	engine, err := ambient.NewEngine(ambient.DefaultConfig(), &testSink{}, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := engine.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	m := sizedModel(t, engine)
	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if engine.Enabled() {
		t.Fatal("expected engine disabled on quit")
	}
	if v := m.View(); v != "" {
		t.Fatalf("expected empty view after quit, got %q", v)
	}
}

func TestViewRendersViewportAndStatus(t *testing.T) {
	m := sizedModel(t, nil)
	for range 10 {
		m = nextFrame(m, 50*time.Millisecond)
	}
	v := m.View()
	lines := strings.Split(v, "\n")
	if len(lines) < m.viewportHeight()+2 {
		t.Fatalf("expected at least %d lines, got %d", m.viewportHeight()+2, len(lines))
	}
	if !strings.Contains(v, "Sound: Off") {
		t.Fatal("expected sound status in view")
	}
	if !strings.Contains(v, heroButtons) {
		t.Fatal("expected hero buttons in view")
	}
}

func TestViewFlashesLightning(t *testing.T) {
	m := sizedModel(t, nil)
	if strings.Contains(m.View(), "░") {
		t.Fatal("expected dark sky before the first flash")
	}
	m.now = m.start.Add(6*time.Second + 40*time.Millisecond)
	if !strings.Contains(m.View(), "░") {
		t.Fatal("expected sky flash during lightning")
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(testConfig(), nil, nil)
	if v := m.View(); !strings.Contains(v, "loading") {
		t.Fatalf("expected loading placeholder, got %q", v)
	}
}

func TestCanvasClipsAndRenders(t *testing.T) {
	c := newCanvas(4, 2)
	c.text(2, 0, "abcd", paint{})
	c.put(-1, 1, 'x', paint{})
	c.put(0, 5, 'x', paint{})
	c.put(3, 1, 'z', paint{})

	want := "  ab\n   z"
	if got := c.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the spirit of the hidden leaf burns bright", 12)
	for _, l := range lines {
		if len(l) > 12 {
			t.Fatalf("line %q exceeds width", l)
		}
	}
	if got := strings.Join(lines, " "); got != "the spirit of the hidden leaf burns bright" {
		t.Fatalf("wrap lost words: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("shinobi", 4); got != "shi…" {
		t.Fatalf("expected shi…, got %q", got)
	}
	if got := truncate("leaf", 10); got != "leaf" {
		t.Fatalf("expected unchanged, got %q", got)
	}
}
