package scene

import "time"

// LightningPeriod is the time between two sky flashes.
const LightningPeriod = 7 * time.Second

// lightningAt is when, within each period, a flash starts.
const lightningAt = 6 * time.Second

// Lightning returns the sky flash intensity in [0,1] at elapsed time since
// the page opened. Each flash flickers twice: a full strike, a short gap,
// then a weaker afterglow.
func Lightning(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	t := elapsed%LightningPeriod - lightningAt
	switch {
	case t >= 0 && t < 80*time.Millisecond:
		return 1
	case t >= 160*time.Millisecond && t < 240*time.Millisecond:
		return 0.6
	}
	return 0
}
