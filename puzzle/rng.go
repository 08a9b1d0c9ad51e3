// Package puzzle - RNG policy for generation attempts.
//
// Goals:
//   - Determinism: same seed ⇒ identical puzzles across platforms.
//   - Encapsulation: one seed-routing point; no time-based sources anywhere.
//   - Independence: each attempt gets its own derived stream, so attempt k
//     produces the same placements whether or not attempt k-1 ran its full
//     course.
package puzzle

import "github.com/katalvlaran/wordsearch/grid"

// defaultSeed mirrors the zero-seed policy of grid.NewRand: Seed==0 means a
// fixed, stable seed rather than an ambient one.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and an attempt index into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small input changes
// produce large, well-distributed output changes, decorrelating the
// per-attempt streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// attemptRand returns the randomness source for one generation attempt.
// An explicit base source is used verbatim (the caller owns its stream);
// otherwise an independent deterministic stream is derived from seed and
// the attempt index.
// Complexity: O(1).
func attemptRand(base grid.Rand, seed int64, attempt int) grid.Rand {
	if base != nil {
		return base
	}
	if seed == 0 {
		seed = defaultSeed
	}
	return grid.NewRand(deriveSeed(seed, uint64(attempt)))
}
