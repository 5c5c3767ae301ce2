// Package rng holds the randomness primitives used by spawning: a minimal
// integer source and weighted selection over ordered tables.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source draws uniform integers in [0, n). n must be positive.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. Seed 0 derives a seed from the clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Between returns a uniform integer in [lo, hi). Returns lo when hi <= lo.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}

// Percent reports whether a d100 draw lands under chance.
func Percent(src Source, chance int) bool {
	return src.IntN(100) < chance
}

// Pick returns a uniformly chosen element of items.
// items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
