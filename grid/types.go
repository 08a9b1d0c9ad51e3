// Package grid defines the letter-buffer type, its sentinel errors, and the
// injected randomness contract shared by the generation packages.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrGridSize indicates a non-positive grid size was requested.
	ErrGridSize = errors.New("grid: size must be positive")
)

// Empty marks a cell that holds no letter yet.
const Empty byte = 0

// Letters available to FillRemaining; also the only values Set accepts
// besides Empty.
const (
	minLetter   byte = 'A'
	maxLetter   byte = 'Z'
	letterCount      = int(maxLetter-minLetter) + 1
)

// Rand is the source of uniform randomness injected into generation.
// *math/rand.Rand satisfies it. Implementations must return Intn results
// uniformly in [0,n) and perform an unbiased Shuffle.
//
// Rand implementations are not required to be goroutine-safe; generation is
// single-threaded and never shares a Rand across goroutines.
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0, matching
	// math/rand semantics; callers never pass n <= 0.
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// Grid is a square buffer of letter cells. The zero value is unusable;
// construct with New. Cells hold Empty or an uppercase letter A–Z — Set
// silently refuses anything else, preserving the invariant without error
// plumbing on the hot path.
type Grid struct {
	size  int
	cells []byte // row-major: cells[row*size+col]
}
