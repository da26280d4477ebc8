package kernel

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the subset of *rand.Rand the domain depends on. Jitter and
// identifier suffixes draw from it so tests can pin the sequence.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// LockedRandom serialises access to a seeded generator.
type LockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRandom returns a goroutine-safe generator with a fixed seed.
func NewSeededRandom(seed uint64) *LockedRandom {
	return &LockedRandom{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // simulation only
}

func (r *LockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *LockedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}
