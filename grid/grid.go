package grid

import "strings"

// New constructs an empty size×size Grid.
// Returns ErrGridSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrGridSize
	}
	return &Grid{
		size:  size,
		cells: make([]byte, size*size),
	}, nil
}

// Size returns the grid's side length N.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Get returns the letter at (row,col). The second return is false when the
// coordinate is out of bounds; an in-bounds empty cell returns (Empty, true).
// Complexity: O(1).
func (g *Grid) Get(row, col int) (byte, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.cells[row*g.size+col], true
}

// Set writes v at (row,col). Out-of-bounds writes are no-ops, as are writes
// of anything other than Empty or an uppercase letter A–Z; callers that need
// hard guarantees check InBounds first.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v byte) {
	if !g.InBounds(row, col) {
		return
	}
	if v != Empty && (v < minLetter || v > maxLetter) {
		return
	}
	g.cells[row*g.size+col] = v
}

// Filled reports whether the cell at (row,col) holds a letter. Out-of-bounds
// coordinates report false.
// Complexity: O(1).
func (g *Grid) Filled(row, col int) bool {
	v, ok := g.Get(row, col)
	return ok && v != Empty
}

// FillRemaining replaces every Empty cell with a uniformly random letter
// A–Z drawn from r, leaving placed letters untouched. After it returns the
// grid is fully dense. A nil r falls back to a deterministic default stream.
// Complexity: O(N²).
func (g *Grid) FillRemaining(r Rand) {
	if r == nil {
		r = defaultRand()
	}
	for i, v := range g.cells {
		if v == Empty {
			g.cells[i] = minLetter + byte(r.Intn(letterCount))
		}
	}
}

// Clone returns a deep copy of g.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Density returns the fraction of cells holding a letter, in [0,1].
// Complexity: O(N²).
func (g *Grid) Density() float64 {
	filled := 0
	for _, v := range g.cells {
		if v != Empty {
			filled++
		}
	}
	return float64(filled) / float64(len(g.cells))
}

// String renders the grid row by row, letters separated by spaces and
// empty cells as '·'. Intended for diagnostics and terminal output.
// Complexity: O(N²).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (2*g.size + 1))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			v := g.cells[row*g.size+col]
			if v == Empty {
				b.WriteRune('·')
			} else {
				b.WriteByte(v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
