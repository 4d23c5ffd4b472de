package motion

import "github.com/charmbracelet/harmonica"

// SpringField is a set of independent springs sharing one parameter set.
type SpringField struct {
	params SpringParams
	pos    []float64
	vel    []float64
	target []float64

	coeffDt float64
	coeffs  harmonica.Spring
}

// NewSpringField returns n springs at rest at initial.
func NewSpringField(p SpringParams, n int, initial float64) (*SpringField, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f := &SpringField{params: p}
	f.Resize(n, initial)
	return f, nil
}

// Resize changes the number of springs, placing all of them at rest at
// initial. It is a no-op when the size is unchanged.
func (f *SpringField) Resize(n int, initial float64) {
	if len(f.pos) == n {
		return
	}
	f.pos = make([]float64, n)
	f.vel = make([]float64, n)
	f.target = make([]float64, n)
	for i := range n {
		f.pos[i] = initial
		f.target[i] = initial
	}
}

func (f *SpringField) Len() int { return len(f.pos) }

// SetTarget sets the rest position of spring i.
func (f *SpringField) SetTarget(i int, target float64) {
	f.target[i] = target
}

// Value returns the position of spring i.
func (f *SpringField) Value(i int) float64 { return f.pos[i] }

// Update integrates every spring by dt seconds.
func (f *SpringField) Update(dt float64) {
	dt = ClampStep(dt)
	if dt == 0 || len(f.pos) == 0 {
		return
	}
	if dt != f.coeffDt {
		omega, zeta := f.params.Harmonic()
		f.coeffs = harmonica.NewSpring(dt, omega, zeta)
		f.coeffDt = dt
	}
	for i := range f.pos {
		f.pos[i], f.vel[i] = f.coeffs.Update(f.pos[i], f.vel[i], f.target[i])
	}
}
