package service

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Rng is a uniform random source shared by concurrently runnable systems
// Each draw is O(1), so draws are serialized behind one mutex rather than
// giving every system its own stream
type Rng struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRng creates a PCG-backed source; seed 0 seeds from the wall clock
func NewRng(seed uint64) *Rng {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rng{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [low, high)
// low >= high is a caller contract violation and panics
func (r *Rng) Intn(low, high int) int {
	if low >= high {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", low, high))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return low + r.rnd.Intn(high-low)
}

// Uint64 returns a full-range value
func (r *Rng) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Uint64()
}
