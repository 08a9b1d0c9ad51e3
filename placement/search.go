package placement

import (
	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/grid"
)

// Search finds a position for word on the display grid and commits it to
// both display and solution. It scans every start cell against every vector,
// keeps the legal candidates, scores them (see score.go), and commits one of
// the maximum-score candidates chosen uniformly via r. A nil r falls back to
// a deterministic default stream.
//
// Contracts:
//   - word is uppercase A–Z, non-empty (ErrEmptyWord / ErrWordLetters).
//   - display and solution are non-nil and equally sized (ErrGridMismatch).
//   - vectors is non-empty (ErrNoVectors).
//
// On ErrNoPlacement both grids are guaranteed untouched; placement is
// all-or-nothing per call.
//
// Complexity: O(N² × V × L) time, O(N²) transient memory.
func Search(word string, display, solution *grid.Grid, vectors []direction.Vector, r grid.Rand, opts Options) (PlacedWord, error) {
	if err := validate(word, display, solution, vectors); err != nil {
		return PlacedWord{}, err
	}
	if r == nil {
		r = grid.NewRand(0)
	}

	overlapW, spacingW := opts.weights(display.Density())

	var (
		candidates []candidate
		best       int
		n          = display.Size()
	)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for _, v := range vectors {
				if !fits(word, display, row, col, v) {
					continue
				}
				sc := score(word, display, row, col, v, overlapW, spacingW)
				if len(candidates) == 0 || sc > best {
					best = sc
				}
				candidates = append(candidates, candidate{row: row, col: col, dir: v, score: sc})
			}
		}
	}
	if len(candidates) == 0 {
		return PlacedWord{}, ErrNoPlacement
	}

	// Uniform choice among the maximum-score candidates; scan order must not
	// bias placement toward the top-left corner.
	ties := candidates[:0]
	for _, c := range candidates {
		if c.score == best {
			ties = append(ties, c)
		}
	}
	chosen := ties[r.Intn(len(ties))]

	commit(word, display, solution, chosen)

	return PlacedWord{
		Word:   word,
		Row:    chosen.row,
		Col:    chosen.col,
		Dir:    chosen.dir,
		Length: len(word),
	}, nil
}

// validate enforces the Search contracts.
func validate(word string, display, solution *grid.Grid, vectors []direction.Vector) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return ErrWordLetters
		}
	}
	if display == nil || solution == nil || display.Size() != solution.Size() {
		return ErrGridMismatch
	}
	if len(vectors) == 0 {
		return ErrNoVectors
	}
	return nil
}

// fits reports whether word can occupy the cells from (row,col) along v:
// every cell in bounds and either Empty or holding the exact letter the
// word needs there.
// Complexity: O(L).
func fits(word string, display *grid.Grid, row, col int, v direction.Vector) bool {
	endRow := row + (len(word)-1)*v.DR
	endCol := col + (len(word)-1)*v.DC
	if !display.InBounds(endRow, endCol) {
		return false
	}
	for i := 0; i < len(word); i++ {
		cell, ok := display.Get(row+i*v.DR, col+i*v.DC)
		if !ok {
			return false
		}
		if cell != grid.Empty && cell != word[i] {
			return false
		}
	}
	return true
}

// commit writes the word's letters into both grids along the chosen vector.
// Callers have already proven legality via fits.
// Complexity: O(L).
func commit(word string, display, solution *grid.Grid, c candidate) {
	for i := 0; i < len(word); i++ {
		row, col := c.row+i*c.dir.DR, c.col+i*c.dir.DC
		display.Set(row, col, word[i])
		solution.Set(row, col, word[i])
	}
}
