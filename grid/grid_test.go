package grid_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordsearch/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes.
func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		_, err := grid.New(size)
		if !errors.Is(err, grid.ErrGridSize) {
			t.Errorf("New(%d) error = %v; want ErrGridSize", size, err)
		}
	}
}

// TestNew_Empty verifies a fresh grid is entirely empty and sized correctly.
func TestNew_Empty(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v, ok := g.Get(row, col)
			require.True(t, ok, "Get(%d,%d) in bounds", row, col)
			require.Equal(t, grid.Empty, v)
		}
	}
	require.Equal(t, 0.0, g.Density())
}

// TestInBounds covers corners and one-past-the-edge coordinates.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 2}, {0, 2}, {2, 0}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Get / Set
//----------------------------------------------------------------------------//

// TestGetSet verifies round-trips, absent reads, and no-op writes.
func TestGetSet(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	g.Set(1, 2, 'Q')
	v, ok := g.Get(1, 2)
	require.True(t, ok)
	require.Equal(t, byte('Q'), v)

	// Out-of-bounds read reports absent.
	_, ok = g.Get(5, 5)
	require.False(t, ok)

	// Out-of-bounds write is a no-op, not a panic.
	g.Set(-1, 0, 'X')
	g.Set(0, 3, 'X')

	// Non-letter writes are refused.
	g.Set(0, 0, 'a')
	g.Set(0, 1, '!')
	require.False(t, g.Filled(0, 0))
	require.False(t, g.Filled(0, 1))

	// Empty is a legal write: clearing a cell.
	g.Set(1, 2, grid.Empty)
	require.False(t, g.Filled(1, 2))
}

//----------------------------------------------------------------------------//
// FillRemaining
//----------------------------------------------------------------------------//

// TestFillRemaining verifies placed letters survive and every other cell
// becomes a letter A–Z.
func TestFillRemaining(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	g.Set(2, 2, 'K')

	g.FillRemaining(rand.New(rand.NewSource(7)))

	v, _ := g.Get(2, 2)
	require.Equal(t, byte('K'), v, "placed letter must survive fill")

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			v, ok := g.Get(row, col)
			require.True(t, ok)
			require.True(t, v >= 'A' && v <= 'Z', "cell (%d,%d) = %q", row, col, v)
		}
	}
	require.Equal(t, 1.0, g.Density())
}

// TestFillRemaining_Deterministic verifies identical seeds produce identical
// grids, and that the nil-Rand fallback is itself reproducible.
func TestFillRemaining_Deterministic(t *testing.T) {
	fill := func(r grid.Rand) string {
		g, err := grid.New(6)
		require.NoError(t, err)
		g.FillRemaining(r)
		return g.String()
	}

	require.Equal(t, fill(rand.New(rand.NewSource(42))), fill(rand.New(rand.NewSource(42))))
	require.Equal(t, fill(nil), fill(nil))
}

//----------------------------------------------------------------------------//
// Clone / Density
//----------------------------------------------------------------------------//

// TestClone verifies deep-copy semantics.
func TestClone(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	g.Set(0, 0, 'A')

	c := g.Clone()
	c.Set(0, 0, 'B')
	c.Set(2, 2, 'Z')

	v, _ := g.Get(0, 0)
	require.Equal(t, byte('A'), v, "mutating the clone must not touch the original")
	require.False(t, g.Filled(2, 2))
}

// TestDensity verifies the filled fraction.
func TestDensity(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.Equal(t, 0.0, g.Density())

	g.Set(0, 0, 'A')
	require.Equal(t, 0.25, g.Density())

	g.Set(0, 1, 'B')
	g.Set(1, 0, 'C')
	g.Set(1, 1, 'D')
	require.Equal(t, 1.0, g.Density())
}
