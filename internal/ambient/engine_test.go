package ambient

import (
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"
)

type fakeSink struct {
	mu      sync.Mutex
	open    int
	opened  int
	failErr error
	voices  []*fakeVoice
}

type fakeVoice struct {
	sink    *fakeSink
	src     io.Reader
	playing bool
	closed  int
}

func (s *fakeSink) Open(src io.Reader) (Voice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	v := &fakeVoice{sink: s, src: src}
	s.open++
	s.opened++
	s.voices = append(s.voices, v)
	return v, nil
}

func (s *fakeSink) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (v *fakeVoice) Play() { v.playing = true }

func (v *fakeVoice) Close() error {
	v.sink.mu.Lock()
	defer v.sink.mu.Unlock()
	v.closed++
	v.playing = false
	v.sink.open--
	return nil
}

func newTestEngine(t *testing.T, sink Sink) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Interval = time.Millisecond
	e, err := NewEngine(cfg, sink, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestEnableThenDisableReturnsToBaseline(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)

	s, err := e.Enable()
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if !e.Enabled() || sink.active() != 1 || e.loops.Load() != 1 {
		t.Fatalf("after enable: enabled=%v voices=%d loops=%d", e.Enabled(), sink.active(), e.loops.Load())
	}
	if !sink.voices[0].playing {
		t.Fatal("expected voice to be playing")
	}

	s.Close()
	if e.Enabled() {
		t.Fatal("engine still enabled after session close")
	}
	if sink.active() != 0 {
		t.Fatalf("voices after close = %d, want 0", sink.active())
	}
	if e.loops.Load() != 0 {
		t.Fatalf("control loops after close = %d, want 0", e.loops.Load())
	}
	if s.graph.running() {
		t.Fatal("oscillator still running after close")
	}
}

func TestDoubleEnableKeepsOneSession(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)

	first, err := e.Enable()
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	second, err := e.Enable()
	if !errors.Is(err, ErrAlreadyEnabled) {
		t.Fatalf("second Enable() error = %v, want ErrAlreadyEnabled", err)
	}
	if second != nil {
		t.Fatal("second Enable() returned a handle")
	}
	if sink.opened != 1 || e.loops.Load() != 1 {
		t.Fatalf("opened=%d loops=%d, want 1/1", sink.opened, e.loops.Load())
	}

	first.Close()
	first.Close()
	if sink.voices[0].closed != 1 {
		t.Fatalf("voice closed %d times, want 1", sink.voices[0].closed)
	}
}

func TestToggleCycles(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)

	for i := range 3 {
		st, err := e.Toggle()
		if err != nil || st != Enabled {
			t.Fatalf("cycle %d on: state=%v err=%v", i, st, err)
		}
		st, err = e.Toggle()
		if err != nil || st != Disabled {
			t.Fatalf("cycle %d off: state=%v err=%v", i, st, err)
		}
	}
	if sink.active() != 0 || e.loops.Load() != 0 {
		t.Fatalf("voices=%d loops=%d after toggling off", sink.active(), e.loops.Load())
	}
	if sink.opened != 3 {
		t.Fatalf("opened %d sessions, want 3", sink.opened)
	}
}

func TestCloseTearsDownRunningSession(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)
	s, err := e.Enable()
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	e.Close()
	e.Close()
	s.Close()
	if sink.active() != 0 || e.loops.Load() != 0 || e.State() != Disabled {
		t.Fatalf("voices=%d loops=%d state=%v", sink.active(), e.loops.Load(), e.State())
	}
	if sink.voices[0].closed != 1 {
		t.Fatalf("voice closed %d times, want 1", sink.voices[0].closed)
	}
}

func TestSessionCloseReleasesLoopBeforeReturning(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)
	for i := range 500 {
		s, err := e.Enable()
		if err != nil {
			t.Fatalf("cycle %d: Enable() error = %v", i, err)
		}
		s.Close()
		if n := e.loops.Load(); n != 0 {
			t.Fatalf("cycle %d: control loops after Close = %d, want 0", i, n)
		}
	}
}

func TestEnableAfterCloseFails(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)
	e.Close()

	if s, err := e.Enable(); !errors.Is(err, ErrClosed) || s != nil {
		t.Fatalf("Enable() after Close = %v, %v; want nil, ErrClosed", s, err)
	}
	st, err := e.Toggle()
	if !errors.Is(err, ErrClosed) || st != Disabled {
		t.Fatalf("Toggle() after Close = %v, %v; want Disabled, ErrClosed", st, err)
	}
	if sink.opened != 0 || e.loops.Load() != 0 {
		t.Fatalf("opened=%d loops=%d after Close, want 0/0", sink.opened, e.loops.Load())
	}
}

func TestSinkFailureLeavesEngineDisabled(t *testing.T) {
	boom := errors.New("no device")
	sink := &fakeSink{failErr: boom}
	e := newTestEngine(t, sink)

	st, err := e.Toggle()
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, boom) {
		t.Fatalf("Toggle() error = %v, want ErrUnavailable wrapping cause", err)
	}
	if st != Disabled || e.Enabled() || e.loops.Load() != 0 {
		t.Fatalf("state=%v loops=%d after failure", st, e.loops.Load())
	}

	sink.mu.Lock()
	sink.failErr = nil
	sink.mu.Unlock()
	if st, err := e.Toggle(); err != nil || st != Enabled {
		t.Fatalf("retry: state=%v err=%v", st, err)
	}
	e.Close()
}

func TestControlLoopMovesGain(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, sink)
	s, err := e.Enable()
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	defer s.Close()

	start := s.Gain()
	deadline := time.Now().Add(2 * time.Second)
	for s.Gain() == start {
		if time.Now().After(deadline) {
			t.Fatal("gain never changed")
		}
		time.Sleep(time.Millisecond)
	}
	floor, ceil := s.GainBounds()
	if g := s.Gain(); g < floor || g > ceil {
		t.Fatalf("gain %v outside [%v, %v]", g, floor, ceil)
	}
}

func TestGraphProducesQuietSine(t *testing.T) {
	g, err := newGraph(DefaultConfig())
	if err != nil {
		t.Fatalf("newGraph() error = %v", err)
	}
	buf := make([]byte, 1024*bytesPerFrame)
	n, err := g.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read() = %d, %v", n, err)
	}

	peak := 0.0
	for i := 0; i < n; i += 4 {
		v := float64(math.Float32frombits(uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2])<<16 | uint32(buf[i+3])<<24))
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 || peak > 0.0008+1e-6 {
		t.Fatalf("peak amplitude %v, want in (0, 0.0008]", peak)
	}

	g.stop()
	if n, err := g.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("Read() after stop = %d, %v, want 0, EOF", n, err)
	}
}
