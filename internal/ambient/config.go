package ambient

import (
	"errors"
	"fmt"
	"time"
)

// Config describes the ambient tone and its loudness envelope.
type Config struct {
	SampleRate  int
	Frequency   float64 // oscillator frequency in Hz
	InitialGain float64
	GainFloor   float64
	GainCeil    float64
	GainStep    float64
	Interval    time.Duration // control loop period
}

// DefaultConfig returns the showcase's ambient loop: a 120 Hz sine breathing
// between 0.0002 and 0.0015 gain in 0.0003 steps every 200ms.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		Frequency:   120,
		InitialGain: 0.0008,
		GainFloor:   0.0002,
		GainCeil:    0.0015,
		GainStep:    0.0003,
		Interval:    200 * time.Millisecond,
	}
}

var errInvalidConfig = errors.New("invalid ambient config")

// Validate checks that c describes a playable loop.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", errInvalidConfig, c.SampleRate)
	case c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/2:
		return fmt.Errorf("%w: frequency %g Hz", errInvalidConfig, c.Frequency)
	case !(c.GainFloor < c.GainCeil):
		return fmt.Errorf("%w: gain bounds [%g, %g]", errInvalidConfig, c.GainFloor, c.GainCeil)
	case c.GainStep <= 0:
		return fmt.Errorf("%w: gain step %g", errInvalidConfig, c.GainStep)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval %v", errInvalidConfig, c.Interval)
	}
	return nil
}
