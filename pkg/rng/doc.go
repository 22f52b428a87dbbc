// Package rng provides deterministic random number generation for the dungeon generator.
//
// # Overview
//
// The RNG type is the only source of entropy in the core. Given the same
// 64-bit seed, two RNG instances produce byte-identical sequences for every
// operation (NextU32, IntRange, PercentRoll, ...), on every platform and
// every Go version, because the stream is a frozen, hand-rolled splitmix64
// generator rather than math/rand (whose algorithm is not a frozen
// contract across stdlib versions).
//
// # Sub-stream derivation
//
// Pipeline stages that need an independent stream (a post-process step, the
// room-type scorer) call Derive(label) rather than minting a fresh external
// seed. Derive folds the current seed and a label through SHA-256:
//
//	seed_sub = H(seed, label)[0:8]
//
// so the whole pipeline remains driven by a single request seed while
// internal stages stay decorrelated from one another.
//
// # Usage
//
//	r := rng.New(request.Seed)
//	roomCount := r.IntRange(cfg.MinRooms, cfg.MaxRooms)
//	if r.PercentRoll(cfg.WigglePercent) {
//	    // re-roll direction
//	}
//	smoothRNG := r.Derive("path_smooth")
//
// # Thread safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance; Derive hands out an independent instance for exactly this
// purpose.
package rng
