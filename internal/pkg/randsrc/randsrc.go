// Package randsrc abstracts the pseudo-random source the simulation draws from,
// so production runs can use fresh entropy and tests a fixed seed.
package randsrc

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the simulation needs.
type Source interface {
	IntN(n int) int
	Float64() float64
	Perm(n int) []int
}

// New returns a PCG-backed source. A zero seed draws one from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Between returns a uniform integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Choice returns a uniformly chosen element of items. items must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Sample returns k distinct elements of items chosen uniformly without
// replacement. k is clamped to len(items).
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	perm := src.Perm(len(items))
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

// Uniform returns a uniform float in [0, max).
func Uniform(src Source, max float64) float64 {
	return src.Float64() * max
}
