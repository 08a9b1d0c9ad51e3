// Package placement defines the placed-word record, search options, and
// sentinel errors.
package placement

import (
	"errors"

	"github.com/katalvlaran/wordsearch/direction"
)

// Sentinel errors for placement operations.
var (
	// ErrNoPlacement indicates no legal (cell, vector) pair exists for the word.
	ErrNoPlacement = errors.New("placement: no legal position for word")
	// ErrEmptyWord indicates an empty word was passed to Search.
	ErrEmptyWord = errors.New("placement: word must be non-empty")
	// ErrWordLetters indicates the word contains a character outside A–Z.
	ErrWordLetters = errors.New("placement: word must contain only uppercase letters A-Z")
	// ErrNoVectors indicates an empty vector set — a configuration error upstream.
	ErrNoVectors = errors.New("placement: vector set must be non-empty")
	// ErrGridMismatch indicates nil grids or display/solution size disagreement.
	ErrGridMismatch = errors.New("placement: display and solution grids must be non-nil and equally sized")
)

// PlacedWord is the permanent record of where a word ended up. Once returned
// by Search it is immutable for the remainder of the generation attempt.
//
// Invariant: Length steps of Dir from (Row,Col) stay within grid bounds, and
// every traversed cell holds the corresponding word letter in both the
// display and solution grids.
type PlacedWord struct {
	Word   string
	Row    int // start cell row
	Col    int // start cell column
	Dir    direction.Vector
	Length int
}

// Cell returns the coordinates of the i-th letter's cell, i in [0,Length).
// Complexity: O(1).
func (p PlacedWord) Cell(i int) (row, col int) {
	return p.Row + i*p.Dir.DR, p.Col + i*p.Dir.DC
}

// End returns the coordinates of the last letter's cell.
// Complexity: O(1).
func (p PlacedWord) End() (row, col int) {
	return p.Cell(p.Length - 1)
}

// Covers reports whether the word's footprint includes (row,col).
// Complexity: O(L).
func (p PlacedWord) Covers(row, col int) bool {
	for i := 0; i < p.Length; i++ {
		r, c := p.Cell(i)
		if r == row && c == col {
			return true
		}
	}
	return false
}

// Options tunes the placement scoring heuristic. The zero value is NOT
// usable; start from DefaultOptions.
//
// Fields:
//   - SparseDensity — grid fill fraction below which the grid counts as
//     sparse. Sparse grids favor spreading words out; dense grids favor
//     overlapping them.
//   - SparseOverlapWeight / SparseSpacingWeight — score weights while sparse.
//   - DenseOverlapWeight / DenseSpacingWeight — score weights once dense.
//
// The defaults are a tuning choice, not semantics: any weights that reward
// overlap and penalize crowding satisfy the design.
type Options struct {
	SparseDensity       float64
	SparseOverlapWeight int
	SparseSpacingWeight int
	DenseOverlapWeight  int
	DenseSpacingWeight  int
}

// DefaultOptions returns the standard heuristic weights: below 35% fill,
// crowding outweighs overlap three-to-two; above it, overlap dominates
// five-to-one.
func DefaultOptions() Options {
	return Options{
		SparseDensity:       0.35,
		SparseOverlapWeight: 2,
		SparseSpacingWeight: 3,
		DenseOverlapWeight:  5,
		DenseSpacingWeight:  1,
	}
}

// candidate is a transient legal (cell, vector) pair with its score, alive
// only during one Search call.
type candidate struct {
	row, col int
	dir      direction.Vector
	score    int
}
