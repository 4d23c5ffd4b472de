// Package trail keeps the short-lived markers that follow the pointer.
package trail

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxLiveCount caps the number of particles alive at once.
	MaxLiveCount = 18
	// Lifetime is how long a particle stays alive after spawning.
	Lifetime = 800 * time.Millisecond
)

// ErrInvalidLimits is returned for a non-positive capacity or lifetime.
var ErrInvalidLimits = errors.New("trail capacity and lifetime must be positive")

// Particle is one trail marker. It never changes after spawning.
type Particle struct {
	ID        uint64
	X, Y      float64
	SpawnTime time.Time
}

// Manager owns the live particles in spawn order.
type Manager struct {
	live     ring
	lifetime time.Duration
	nextID   uint64
}

// New returns a manager with the default limits.
func New() *Manager {
	m, _ := NewWithLimits(MaxLiveCount, Lifetime)
	return m
}

// NewWithLimits returns a manager holding at most maxLive particles, each
// alive for lifetime.
func NewWithLimits(maxLive int, lifetime time.Duration) (*Manager, error) {
	if maxLive <= 0 || lifetime <= 0 {
		return nil, fmt.Errorf("capacity %d, lifetime %v: %w", maxLive, lifetime, ErrInvalidLimits)
	}
	return &Manager{live: newRing(maxLive), lifetime: lifetime}, nil
}

// OnPointerMove spawns a particle at (x, y). A move that lands on the same
// position as the newest particle is not a qualifying move and spawns
// nothing. When the manager is full the oldest particle is evicted first.
func (m *Manager) OnPointerMove(x, y float64, now time.Time) bool {
	if last, ok := m.live.newest(); ok && last.X == x && last.Y == y {
		return false
	}
	m.nextID++
	m.live.push(Particle{ID: m.nextID, X: x, Y: y, SpawnTime: now})
	return true
}

// Tick removes particles whose lifetime has elapsed at now and returns how
// many were removed.
func (m *Manager) Tick(now time.Time) int {
	return m.live.retain(func(p Particle) bool {
		return now.Sub(p.SpawnTime) < m.lifetime
	})
}

// Live returns a copy of the live particles, oldest first.
func (m *Manager) Live() []Particle {
	out := make([]Particle, m.live.n)
	for i := range out {
		out[i] = m.live.at(i)
	}
	return out
}

func (m *Manager) Len() int { return m.live.n }

func (m *Manager) Cap() int { return len(m.live.buf) }

// Reset drops every particle.
func (m *Manager) Reset() { m.live.clear() }

// Progress returns how far through its lifetime p is at now, in [0,1].
func (m *Manager) Progress(p Particle, now time.Time) float64 {
	t := float64(now.Sub(p.SpawnTime)) / float64(m.lifetime)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Fade returns the default ease-out opacity and scale of a particle at the
// given lifetime progress: opacity 0.8 -> 0, scale 0.6 -> 2.4.
func Fade(progress float64) (opacity, scale float64) {
	e := 1 - (1-progress)*(1-progress)
	return 0.8 * (1 - e), 0.6 + 1.8*e
}
