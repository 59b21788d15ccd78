package core

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// RandomRNG creates an RNG seeded from the runtime's random source.
func RandomRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// FillBits sets each bit of the set independently with probability 0.5.
// The length of the set is left unchanged.
func FillBits(r *rand.Rand, bits *bitset.BitSet) {
	n := bits.Len()
	for i := uint(0); i < n; i++ {
		bits.SetTo(i, r.Float64() < 0.5)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
