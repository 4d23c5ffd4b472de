package ambient

// Envelope walks a gain value back and forth between a floor and a ceiling
// in fixed steps.
type Envelope struct {
	floor, ceil, step float64
	gain              float64
	rising            bool
}

// NewEnvelope returns an envelope starting at cfg.InitialGain and rising.
func NewEnvelope(cfg Config) *Envelope {
	return &Envelope{
		floor:  cfg.GainFloor,
		ceil:   cfg.GainCeil,
		step:   cfg.GainStep,
		gain:   clamp(cfg.InitialGain, cfg.GainFloor, cfg.GainCeil),
		rising: true,
	}
}

// Gain returns the current gain.
func (e *Envelope) Gain() float64 { return e.gain }

// Rising reports the current direction.
func (e *Envelope) Rising() bool { return e.rising }

// Next moves one step and returns the new gain. Reaching a bound reverses
// the direction for the following step.
func (e *Envelope) Next() float64 {
	delta := e.step
	if !e.rising {
		delta = -delta
	}
	e.gain = clamp(e.gain+delta, e.floor, e.ceil)
	if e.gain >= e.ceil {
		e.rising = false
	}
	if e.gain <= e.floor {
		e.rising = true
	}
	return e.gain
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
