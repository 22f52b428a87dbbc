package rng

import (
	"crypto/sha256"
	"encoding/binary"
)

// RNG is a deterministic pseudo-random stream seeded from a single 64-bit
// value. The underlying algorithm is splitmix64: a small-state,
// counter-based generator whose output sequence is part of this package's
// public contract, since saved maps carry the seed and must remain
// reproducible for as long as the file format is supported.
type RNG struct {
	seed  uint64
	state uint64
}

// New creates an RNG seeded directly from seed.
func New(seed uint64) *RNG {
	return &RNG{seed: seed, state: seed}
}

// Seed returns the seed this RNG was constructed with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// NextU64 returns the next 64-bit value in the splitmix64 stream.
func (r *RNG) NextU64() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NextU32 returns the next 32-bit value, taken from the high half of the
// 64-bit stream.
func (r *RNG) NextU32() uint32 {
	return uint32(r.NextU64() >> 32)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	// 53 bits of mantissa precision, standard technique for u64 -> [0,1).
	return float64(r.NextU64()>>11) / (1 << 53)
}

// IntRange returns a pseudo-random integer in [lo, hi] inclusive.
// It panics if lo > hi.
func (r *RNG) IntRange(lo, hi int) int {
	if lo > hi {
		panic("rng: IntRange lo must be <= hi")
	}
	if lo == hi {
		return lo
	}
	span := uint64(hi - lo + 1)
	return lo + int(r.NextU64()%span)
}

// PercentRoll reports whether a roll against a 0-100 threshold succeeds:
// it returns true with probability threshold/100. threshold is clamped to
// [0, 100].
func (r *RNG) PercentRoll(threshold int) bool {
	if threshold <= 0 {
		return false
	}
	if threshold >= 100 {
		return true
	}
	return r.IntRange(0, 99) < threshold
}

// Bool returns a pseudo-random boolean with equal probability.
func (r *RNG) Bool() bool {
	return r.NextU64()&1 == 1
}

// Shuffle pseudo-randomizes the order of n elements using the Fisher-Yates
// algorithm, calling swap(i, j) to exchange elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntRange(0, i)
		swap(i, j)
	}
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if weights is empty
// or all weights are zero.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}
	roll := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Derive returns an independent RNG for a named sub-stream, folding this
// RNG's seed and label through SHA-256. Two Derive calls with the same
// seed and label always produce the same sub-stream, but distinct labels
// decorrelate from one another and from the parent stream.
func (r *RNG) Derive(label string) *RNG {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], r.seed)
	h.Write(buf[:])
	h.Write([]byte(label))
	sum := h.Sum(nil)
	return New(binary.BigEndian.Uint64(sum[:8]))
}
