package dataset

import (
	"math/rand/v2"
	"sync/atomic"
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so neighbouring streams are
// uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// newSeededRNG returns a deterministic PCG generator for seed.
func newSeededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, deriveSeed(seed, 0)))
}

// streamSource hands out one independent generator per sample access.
// *rand.Rand is not goroutine-safe, so generators are never shared.
type streamSource struct {
	seeded bool
	seed   uint64
	next   atomic.Uint64
}

// rng returns a fresh generator. Unseeded sources draw from the global
// generator; seeded ones derive stream n from the n-th call.
func (s *streamSource) rng() *rand.Rand {
	if !s.seeded {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	n := s.next.Add(1)
	return rand.New(rand.NewPCG(deriveSeed(s.seed, n), deriveSeed(s.seed, ^n)))
}

// uniform draws from U(lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
