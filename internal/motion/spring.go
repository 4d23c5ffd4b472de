package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// MaxStep is the largest time step, in seconds, a spring integrates in one
// update. Longer gaps (dropped frames, a suspended terminal) are clamped.
const MaxStep = 1.0 / 30

// ErrInvalidMass is returned for spring parameters with a non-positive mass.
var ErrInvalidMass = errors.New("spring mass must be positive")

// SpringParams describes a mass-spring-damper.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Validate reports whether p describes a usable spring.
func (p SpringParams) Validate() error {
	if !(p.Mass > 0) {
		return fmt.Errorf("mass %g: %w", p.Mass, ErrInvalidMass)
	}
	return nil
}

// Harmonic returns the angular frequency and damping ratio equivalent to p.
func (p SpringParams) Harmonic() (angularFrequency, dampingRatio float64) {
	if p.Stiffness <= 0 || p.Mass <= 0 {
		return 0, 0
	}
	angularFrequency = math.Sqrt(p.Stiffness / p.Mass)
	dampingRatio = p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
	return angularFrequency, dampingRatio
}

// SpringState is the integrable state of one spring.
type SpringState struct {
	Current  float64
	Velocity float64
	Target   float64
}

// ClampStep bounds dt to [0, MaxStep].
func ClampStep(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// Step advances s toward target by dt seconds. Velocity carries over, so a
// changed target redirects the motion instead of restarting it.
func Step(p SpringParams, s SpringState, target, dt float64) SpringState {
	s.Target = target
	dt = ClampStep(dt)
	if dt == 0 {
		return s
	}
	omega, zeta := p.Harmonic()
	sp := harmonica.NewSpring(dt, omega, zeta)
	s.Current, s.Velocity = sp.Update(s.Current, s.Velocity, target)
	return s
}

// Spring owns a SpringState and integrates it once per frame.
type Spring struct {
	params SpringParams
	state  SpringState

	coeffDt float64
	coeffs  harmonica.Spring
}

// NewSpring returns a spring at rest at initial.
func NewSpring(p SpringParams, initial float64) (*Spring, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Spring{
		params: p,
		state:  SpringState{Current: initial, Target: initial},
	}, nil
}

// MustSpring is NewSpring for the fixed presets.
func MustSpring(p SpringParams, initial float64) *Spring {
	s, err := NewSpring(p, initial)
	if err != nil {
		panic(err)
	}
	return s
}

// SetTarget changes the rest position without touching velocity.
func (s *Spring) SetTarget(target float64) {
	s.state.Target = target
}

// Update integrates dt seconds and returns the new value.
func (s *Spring) Update(dt float64) float64 {
	dt = ClampStep(dt)
	if dt == 0 {
		return s.state.Current
	}
	if dt != s.coeffDt {
		omega, zeta := s.params.Harmonic()
		s.coeffs = harmonica.NewSpring(dt, omega, zeta)
		s.coeffDt = dt
	}
	s.state.Current, s.state.Velocity = s.coeffs.Update(s.state.Current, s.state.Velocity, s.state.Target)
	return s.state.Current
}

func (s *Spring) Value() float64     { return s.state.Current }
func (s *Spring) Velocity() float64  { return s.state.Velocity }
func (s *Spring) Target() float64    { return s.state.Target }
func (s *Spring) State() SpringState { return s.state }

// Settled reports whether the spring is within eps of its target and nearly
// stationary.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.state.Target-s.state.Current) < eps && math.Abs(s.state.Velocity) < eps
}
