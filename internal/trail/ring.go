package trail

// ring is a fixed-capacity FIFO of particles. Pushing into a full ring
// overwrites the oldest entry.
type ring struct {
	buf  []Particle
	head int // index of the oldest particle
	n    int
}

func newRing(size int) ring {
	return ring{buf: make([]Particle, size)}
}

// push appends p, returning the evicted particle when the ring was full.
func (r *ring) push(p Particle) (evicted Particle, ok bool) {
	size := len(r.buf)
	if r.n == size {
		evicted = r.buf[r.head]
		r.buf[r.head] = p
		r.head = (r.head + 1) % size
		return evicted, true
	}
	r.buf[(r.head+r.n)%size] = p
	r.n++
	return Particle{}, false
}

// at returns the i-th particle counting from the oldest.
func (r *ring) at(i int) Particle {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring) newest() (Particle, bool) {
	if r.n == 0 {
		return Particle{}, false
	}
	return r.at(r.n - 1), true
}

// retain keeps only particles for which keep returns true, preserving order.
func (r *ring) retain(keep func(Particle) bool) int {
	kept := 0
	for i := range r.n {
		p := r.at(i)
		if keep(p) {
			r.buf[(r.head+kept)%len(r.buf)] = p
			kept++
		}
	}
	removed := r.n - kept
	r.n = kept
	return removed
}

func (r *ring) clear() {
	r.head = 0
	r.n = 0
}
