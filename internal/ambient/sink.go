package ambient

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Voice is one playing stream on a Sink.
type Voice interface {
	Play()
	Close() error
}

// Sink turns a PCM stream into sound. Streams are interleaved
// little-endian float32 stereo at the engine's sample rate.
type Sink interface {
	Open(src io.Reader) (Voice, error)
}

// OtoSink plays through the default output device.
type OtoSink struct {
	SampleRate int
}

var (
	otoMu  sync.Mutex
	otoCtx *oto.Context
	otoSR  int
)

// otoContext returns the process-wide oto context, creating it on first use.
// A failed attempt is not cached so a later toggle can retry.
func otoContext(sampleRate int) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if otoSR != sampleRate {
			return nil, fmt.Errorf("audio context already running at %d Hz", otoSR)
		}
		return otoCtx, nil
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	otoCtx, otoSR = ctx, sampleRate
	return ctx, nil
}

func (s OtoSink) Open(src io.Reader) (Voice, error) {
	ctx, err := otoContext(s.SampleRate)
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayer(src), nil
}
