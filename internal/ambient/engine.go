// Package ambient plays a quiet procedural tone whose loudness slowly
// breathes while sound is enabled.
package ambient

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrAlreadyEnabled is returned by Enable while a session is running.
	ErrAlreadyEnabled = errors.New("ambient sound already enabled")
	// ErrUnavailable wraps failures to acquire the audio output.
	ErrUnavailable = errors.New("audio output unavailable")
	// ErrClosed is returned by Enable after Close.
	ErrClosed = errors.New("ambient engine closed")
)

// State is the engine's toggle state.
type State uint8

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Engine owns at most one Session at a time.
type Engine struct {
	cfg    Config
	sink   Sink
	logger *log.Logger

	mu      sync.Mutex
	session *Session
	closed  bool

	loops atomic.Int32 // running control loops
}

// NewEngine returns a disabled engine. A nil logger discards output.
func NewEngine(cfg Config, sink Sink, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{cfg: cfg, sink: sink, logger: logger}, nil
}

// State returns whether a session is running.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil {
		return Enabled
	}
	return Disabled
}

func (e *Engine) Enabled() bool { return e.State() == Enabled }

// Enable builds the synthesis graph, starts it on the sink and starts the
// control loop. The returned Session is the only handle to that sound;
// closing it disables the engine. While a session exists Enable returns
// ErrAlreadyEnabled and leaves it untouched. If the sink cannot be opened the
// engine stays disabled and the error wraps ErrUnavailable.
func (e *Engine) Enable() (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	if e.session != nil {
		return nil, ErrAlreadyEnabled
	}

	g, err := newGraph(e.cfg)
	if err != nil {
		return nil, err
	}
	voice, err := e.sink.Open(g)
	if err != nil {
		g.stop()
		e.logger.Printf("ambient: open sink: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	voice.Play()

	s := &Session{
		engine: e,
		graph:  g,
		voice:  voice,
		env:    NewEnvelope(e.cfg),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	e.session = s
	e.loops.Add(1)
	go s.run(e.cfg.Interval)

	e.logger.Printf("ambient: enabled (%.0f Hz, gain %g..%g)", e.cfg.Frequency, e.cfg.GainFloor, e.cfg.GainCeil)
	return s, nil
}

// Disable tears down the running session, if any, and reports whether one
// was running.
func (e *Engine) Disable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil {
		return false
	}
	s.teardown()
	e.session = nil
	return true
}

// Toggle flips the engine state and returns the new one.
func (e *Engine) Toggle() (State, error) {
	if e.Disable() {
		return Disabled, nil
	}
	if _, err := e.Enable(); err != nil {
		if errors.Is(err, ErrAlreadyEnabled) {
			return Enabled, nil
		}
		return Disabled, err
	}
	return Enabled, nil
}

// Close disables the engine for good; later Enable calls return ErrClosed.
// It is safe to call on every exit path.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.session != nil {
		e.session.teardown()
		e.session = nil
	}
}

// Session is a running ambient sound.
type Session struct {
	engine *Engine
	graph  *graph
	voice  Voice
	env    *Envelope

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Close stops the control loop and the oscillator and releases the output,
// then disables the engine. Only the first call has an effect.
func (s *Session) Close() {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	s.teardown()
	if e.session == s {
		e.session = nil
	}
}

func (s *Session) teardown() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
		s.graph.stop()
		if err := s.voice.Close(); err != nil {
			s.engine.logger.Printf("ambient: close voice: %v", err)
		}
		s.engine.logger.Printf("ambient: disabled")
	})
}

func (s *Session) run(interval time.Duration) {
	defer func() {
		s.engine.loops.Add(-1)
		close(s.done)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.graph.gain.set(s.env.Next())
		}
	}
}

// Gain returns the gain currently applied to the oscillator.
func (s *Session) Gain() float64 { return s.graph.gain.value() }

// GainBounds returns the envelope floor and ceiling.
func (s *Session) GainBounds() (floor, ceil float64) {
	return s.engine.cfg.GainFloor, s.engine.cfg.GainCeil
}

// Frequency returns the oscillator frequency in Hz.
func (s *Session) Frequency() float64 { return s.engine.cfg.Frequency }
