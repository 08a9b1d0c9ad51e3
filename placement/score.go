package placement

import (
	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/grid"
)

// neighborOffsets is the 8-neighborhood used by the crowding penalty.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// weights selects the (overlap, spacing) weight pair for the current grid
// density: spacing dominates while the grid is sparse, overlap once dense.
// Complexity: O(1).
func (o Options) weights(density float64) (overlapW, spacingW int) {
	if density < o.SparseDensity {
		return o.SparseOverlapWeight, o.SparseSpacingWeight
	}
	return o.DenseOverlapWeight, o.DenseSpacingWeight
}

// score rates a legal candidate: +overlapW per letter-identical cell the
// word shares with an existing placement, -spacingW per filled 8-neighbor of
// each occupied cell, where cells of the word itself never count as
// neighbors. Callers have already proven legality via fits.
// Complexity: O(L).
func score(word string, display *grid.Grid, row, col int, v direction.Vector, overlapW, spacingW int) int {
	var overlap, crowding int
	for i := 0; i < len(word); i++ {
		r, c := row+i*v.DR, col+i*v.DC
		if cell, _ := display.Get(r, c); cell == word[i] {
			overlap++
		}
		for _, d := range neighborOffsets {
			nr, nc := r+d[0], c+d[1]
			if onPath(nr, nc, row, col, v, len(word)) {
				continue
			}
			if display.Filled(nr, nc) {
				crowding++
			}
		}
	}
	return overlapW*overlap - spacingW*crowding
}

// onPath reports whether (r,c) lies on the word's own footprint: (row,col)
// plus k steps of v for some k in [0,length).
// Complexity: O(1).
func onPath(r, c, row, col int, v direction.Vector, length int) bool {
	dr, dc := r-row, c-col
	var k int
	switch {
	case v.DR != 0:
		if dr%v.DR != 0 {
			return false
		}
		k = dr / v.DR
	case v.DC != 0:
		if dc%v.DC != 0 {
			return false
		}
		k = dc / v.DC
	default:
		return false
	}
	if k < 0 || k >= length {
		return false
	}
	return row+k*v.DR == r && col+k*v.DC == c
}
