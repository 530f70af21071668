package stoch

import (
	"golang.org/x/exp/rand"
)

// Random is the deterministic source of uniform deviates for a simulation.
// A single instance is shared by the engine and any client-side samplers,
// so a fixed seed and a fixed order of operations reproduce a run exactly.
//
// Thread-safety: NOT thread-safe. Two independent simulations must use
// separate Random instances.
type Random struct {
	src *rand.Rand
}

// NewRandom creates a Random seeded with the given value.
func NewRandom(seed uint64) *Random {
	return &Random{src: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next uniform deviate in [0, 1).
func (r *Random) Float64() float64 {
	return r.src.Float64()
}

// Source exposes the underlying source so gonum samplers can draw from
// the same deterministic stream.
func (r *Random) Source() rand.Source {
	return r.src
}
