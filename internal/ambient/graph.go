package ambient

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// bytesPerFrame is one stereo float32 sample frame.
const bytesPerFrame = 2 * 4

// gainStage scales its source by a gain that may be changed from another
// goroutine.
type gainStage struct {
	src  beep.Streamer
	gain atomic.Uint64
}

func (g *gainStage) set(v float64) { g.gain.Store(math.Float64bits(v)) }

func (g *gainStage) value() float64 { return math.Float64frombits(g.gain.Load()) }

func (g *gainStage) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.src.Stream(samples)
	k := g.value()
	for i := range samples[:n] {
		samples[i][0] *= k
		samples[i][1] *= k
	}
	return n, ok
}

func (g *gainStage) Err() error { return g.src.Err() }

// graph is oscillator -> gain -> output. It is read as interleaved
// little-endian float32 stereo PCM.
type graph struct {
	gain *gainStage
	ctrl *beep.Ctrl

	mu      sync.Mutex
	buf     [][2]float64
	stopped bool
}

func newGraph(cfg Config) (*graph, error) {
	osc, err := generators.SineTone(beep.SampleRate(cfg.SampleRate), cfg.Frequency)
	if err != nil {
		return nil, fmt.Errorf("create oscillator: %w", err)
	}
	gain := &gainStage{src: osc}
	gain.set(clamp(cfg.InitialGain, cfg.GainFloor, cfg.GainCeil))
	return &graph{
		gain: gain,
		ctrl: &beep.Ctrl{Streamer: gain},
	}, nil
}

// stream fills samples from the graph. It returns false once stopped.
func (g *graph) stream(samples [][2]float64) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return 0, false
	}
	return g.ctrl.Stream(samples)
}

func (g *graph) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(g.buf) < frames {
		g.buf = make([][2]float64, frames)
	}
	buf := g.buf[:frames]
	n, ok := g.stream(buf)
	for i := range buf[:n] {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(buf[i][0])))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(buf[i][1])))
	}
	if !ok {
		return n * bytesPerFrame, io.EOF
	}
	return n * bytesPerFrame, nil
}

// stop silences the oscillator; later reads return io.EOF.
func (g *graph) stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctrl.Paused = true
	g.stopped = true
}

func (g *graph) running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.stopped
}
