package motion

import (
	"errors"
	"fmt"
)

// ErrDegenerateDomain is returned when a mapping's domain bounds are not
// strictly ordered.
var ErrDegenerateDomain = errors.New("mapping domain must satisfy min < max")

// Map linearly interpolates value from [domainMin, domainMax] into
// [rangeMin, rangeMax]. Inputs outside the domain clamp to the nearer range
// bound. A zero-width domain yields rangeMin.
func Map(value, domainMin, domainMax, rangeMin, rangeMax float64) float64 {
	span := domainMax - domainMin
	if span == 0 {
		return rangeMin
	}
	t := clamp01((value - domainMin) / span)
	return rangeMin + t*(rangeMax-rangeMin)
}

// Mapping is a validated domain -> range transform.
type Mapping struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// NewMapping returns a Mapping, rejecting domains where min >= max.
func NewMapping(domainMin, domainMax, rangeMin, rangeMax float64) (Mapping, error) {
	if !(domainMin < domainMax) {
		return Mapping{}, fmt.Errorf("domain [%g, %g]: %w", domainMin, domainMax, ErrDegenerateDomain)
	}
	return Mapping{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}, nil
}

// MustMapping is NewMapping for package-level constants.
func MustMapping(domainMin, domainMax, rangeMin, rangeMax float64) Mapping {
	m, err := NewMapping(domainMin, domainMax, rangeMin, rangeMax)
	if err != nil {
		panic(err)
	}
	return m
}

// Apply maps v through m.
func (m Mapping) Apply(v float64) float64 {
	return Map(v, m.DomainMin, m.DomainMax, m.RangeMin, m.RangeMax)
}

// Progress returns where v sits in the domain as a clamped fraction.
func (m Mapping) Progress(v float64) float64 {
	return Map(v, m.DomainMin, m.DomainMax, 0, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
