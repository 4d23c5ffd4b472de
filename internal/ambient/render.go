package ambient

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RenderWAV writes d of the ambient loop to w as 16-bit stereo PCM. The
// envelope advances every cfg.Interval of rendered audio, as it would when
// playing live.
func RenderWAV(w io.WriteSeeker, cfg Config, d time.Duration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("render duration must be positive, got %v", d)
	}
	g, err := newGraph(cfg)
	if err != nil {
		return err
	}
	env := NewEnvelope(cfg)

	total := int(d.Seconds() * float64(cfg.SampleRate))
	perTick := max(1, int(cfg.Interval.Seconds()*float64(cfg.SampleRate)))

	enc := wav.NewEncoder(w, cfg.SampleRate, 16, 2, 1)
	samples := make([][2]float64, perTick)
	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: cfg.SampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, perTick*2),
	}

	for written := 0; written < total; {
		n := min(perTick, total-written)
		n, _ = g.stream(samples[:n])
		if n == 0 {
			break
		}
		out.Data = out.Data[:n*2]
		for i := range n {
			out.Data[i*2] = toPCM16(samples[i][0])
			out.Data[i*2+1] = toPCM16(samples[i][1])
		}
		if err := enc.Write(out); err != nil {
			return fmt.Errorf("write wav: %w", err)
		}
		written += n
		g.gain.set(env.Next())
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

func toPCM16(v float64) int {
	v = clamp(v, -1, 1)
	return int(math.Round(v * math.MaxInt16))
}
