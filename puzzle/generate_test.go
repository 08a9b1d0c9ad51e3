package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/grid"
	"github.com/katalvlaran/wordsearch/placement"
	"github.com/katalvlaran/wordsearch/puzzle"
)

// requireResultInvariants asserts the structural properties every successful
// Result must satisfy: placements traverse in-bounds letter-matching cells in
// both grids, the display grid is dense, the solution grid holds letters
// exactly on covered cells, and overlapping placements agree.
func requireResultInvariants(t *testing.T, res puzzle.Result) {
	t.Helper()
	n := res.DisplayGrid.Size()
	require.Equal(t, n, res.SolutionGrid.Size())

	covered := make(map[[2]int]byte)
	for _, p := range res.Placed {
		require.Equal(t, len(p.Word), p.Length)
		for i := 0; i < p.Length; i++ {
			row, col := p.Cell(i)
			require.True(t, res.DisplayGrid.InBounds(row, col), "%q cell %d out of bounds", p.Word, i)

			d, _ := res.DisplayGrid.Get(row, col)
			s, _ := res.SolutionGrid.Get(row, col)
			require.Equal(t, p.Word[i], d, "%q display cell %d", p.Word, i)
			require.Equal(t, p.Word[i], s, "%q solution cell %d", p.Word, i)

			// Overlap invariant: any two words sharing a cell agree on it.
			if prev, ok := covered[[2]int{row, col}]; ok {
				require.Equal(t, prev, p.Word[i], "conflicting overlap at (%d,%d)", row, col)
			}
			covered[[2]int{row, col}] = p.Word[i]
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			d, _ := res.DisplayGrid.Get(row, col)
			require.True(t, d >= 'A' && d <= 'Z', "display (%d,%d) not dense", row, col)

			s, _ := res.SolutionGrid.Get(row, col)
			if _, ok := covered[[2]int{row, col}]; !ok {
				require.Equal(t, grid.Empty, s, "solution (%d,%d) must be empty off-word", row, col)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Fail-fast validation
//----------------------------------------------------------------------------//

// TestGenerate_FailFast verifies structurally invalid input is rejected
// before any attempt runs.
func TestGenerate_FailFast(t *testing.T) {
	valid := puzzle.DefaultOptions(5)

	t.Run("NoWords", func(t *testing.T) {
		_, err := puzzle.Generate(nil, valid)
		require.ErrorIs(t, err, puzzle.ErrNoWords)
	})
	t.Run("EmptyWord", func(t *testing.T) {
		_, err := puzzle.Generate([]string{"CAT", ""}, valid)
		require.ErrorIs(t, err, placement.ErrEmptyWord)
	})
	t.Run("LowercaseWord", func(t *testing.T) {
		_, err := puzzle.Generate([]string{"cat"}, valid)
		require.ErrorIs(t, err, placement.ErrWordLetters)
	})
	t.Run("BadSize", func(t *testing.T) {
		opts := valid
		opts.Size = 0
		_, err := puzzle.Generate([]string{"CAT"}, opts)
		require.ErrorIs(t, err, grid.ErrGridSize)
	})
	t.Run("NoDirections", func(t *testing.T) {
		opts := valid
		opts.Directions = direction.Config{}
		res, err := puzzle.Generate([]string{"CAT"}, opts)
		require.ErrorIs(t, err, direction.ErrNoDirections)
		require.Nil(t, res.DisplayGrid, "no grids may be produced on configuration error")
		require.Zero(t, res.Attempts, "no attempt may run on configuration error")
	})
}

//----------------------------------------------------------------------------//
// Generation scenarios
//----------------------------------------------------------------------------//

// TestGenerate_CatDog places both words on a 5×5 grid with horizontal and
// vertical placement only.
func TestGenerate_CatDog(t *testing.T) {
	opts := puzzle.Options{
		Size:       5,
		Directions: direction.Config{Horizontal: true, Vertical: true},
		Seed:       7,
	}

	res, err := puzzle.Generate([]string{"CAT", "DOG"}, opts)
	require.NoError(t, err)
	require.True(t, res.AllPlaced(), "failed words: %v", res.Failed)
	require.Len(t, res.Placed, 2)
	requireResultInvariants(t, res)
}

// TestGenerate_WordLongerThanGrid verifies a 20-letter word on a 5×5 grid
// yields exhaustion when it is the only word, and a partial success when
// placeable words accompany it.
func TestGenerate_WordLongerThanGrid(t *testing.T) {
	opts := puzzle.DefaultOptions(5)
	opts.Directions.Reverse = true
	opts.Seed = 3

	t.Run("Alone", func(t *testing.T) {
		_, err := puzzle.Generate([]string{"SUPERCALIFRAGILISTIC"}, opts)
		require.ErrorIs(t, err, puzzle.ErrExhausted)
	})

	t.Run("WithCompany", func(t *testing.T) {
		res, err := puzzle.Generate([]string{"SUPERCALIFRAGILISTIC", "CAT"}, opts)
		require.NoError(t, err, "partial placement is a success with diagnostics")
		require.Equal(t, []string{"SUPERCALIFRAGILISTIC"}, res.Failed)
		require.Len(t, res.Placed, 1)
		require.Equal(t, "CAT", res.Placed[0].Word)
		requireResultInvariants(t, res)
	})
}

// TestGenerate_AllEightDirections packs a larger list with every
// orientation enabled and checks the full invariant set.
func TestGenerate_AllEightDirections(t *testing.T) {
	words := []string{"GENERATOR", "PUZZLE", "SEARCH", "GRID", "WORD", "CAPSULE", "VECTOR", "OVERLAP"}
	opts := puzzle.Options{
		Size:       12,
		Directions: direction.Config{Horizontal: true, Vertical: true, Diagonal: true, Reverse: true},
		Seed:       99,
	}

	res, err := puzzle.Generate(words, opts)
	require.NoError(t, err)
	requireResultInvariants(t, res)
	require.LessOrEqual(t, len(res.Failed), 2, "a 12×12 grid should fit nearly all of %d words; failed: %v", len(words), res.Failed)
}

//----------------------------------------------------------------------------//
// Determinism and retry behavior
//----------------------------------------------------------------------------//

// TestGenerate_DeterministicPerSeed verifies identical inputs and seeds
// reproduce the Result exactly, and that seeds actually matter.
func TestGenerate_DeterministicPerSeed(t *testing.T) {
	words := []string{"ALPHA", "BRAVO", "DELTA", "GOLF"}
	run := func(seed int64) puzzle.Result {
		opts := puzzle.DefaultOptions(9)
		opts.Seed = seed
		res, err := puzzle.Generate(words, opts)
		require.NoError(t, err)
		return res
	}

	a, b := run(21), run(21)
	require.Equal(t, a.Placed, b.Placed)
	require.Equal(t, a.Failed, b.Failed)
	require.Equal(t, a.DisplayGrid.String(), b.DisplayGrid.String())
	require.Equal(t, a.SolutionGrid.String(), b.SolutionGrid.String())

	varies := false
	for seed := int64(22); seed <= 42 && !varies; seed++ {
		varies = run(seed).DisplayGrid.String() != a.DisplayGrid.String()
	}
	require.True(t, varies, "21 distinct seeds produced identical grids")
}

// TestGenerate_ZeroSeedReproduces verifies the seed-0 policy: "unseeded"
// runs are still reproducible.
func TestGenerate_ZeroSeedReproduces(t *testing.T) {
	opts := puzzle.DefaultOptions(6)
	a, err := puzzle.Generate([]string{"ONE", "TWO", "SIX"}, opts)
	require.NoError(t, err)
	b, err := puzzle.Generate([]string{"ONE", "TWO", "SIX"}, opts)
	require.NoError(t, err)
	require.Equal(t, a.DisplayGrid.String(), b.DisplayGrid.String())
}

// TestGenerate_EarlyExit verifies a trivially satisfiable input stops after
// the first (perfect) attempt.
func TestGenerate_EarlyExit(t *testing.T) {
	opts := puzzle.DefaultOptions(10)
	opts.Seed = 5

	res, err := puzzle.Generate([]string{"CAT"}, opts)
	require.NoError(t, err)
	require.True(t, res.AllPlaced())
	require.Equal(t, 1, res.Attempts, "a perfect first attempt must end the retry loop")
}

// TestGenerate_ExplicitRand verifies a caller-supplied Rand is honored.
func TestGenerate_ExplicitRand(t *testing.T) {
	opts := puzzle.DefaultOptions(8)
	opts.Rand = grid.NewRand(1234)

	res, err := puzzle.Generate([]string{"WORDS", "HERE"}, opts)
	require.NoError(t, err)
	require.True(t, res.AllPlaced())
	requireResultInvariants(t, res)
}

// TestGenerate_LongestFirst verifies the longest word is attempted first by
// giving it exactly one slot that shorter words could otherwise steal.
func TestGenerate_LongestFirst(t *testing.T) {
	// On a 5×5 grid restricted to horizontal placement, the 5-letter word
	// needs a full row. If the shorter words were placed first they could
	// fragment every row; longest-first guarantees the full-width word a row
	// while plenty of room remains.
	opts := puzzle.Options{
		Size:       5,
		Directions: direction.Config{Horizontal: true},
		Seed:       8,
	}

	res, err := puzzle.Generate([]string{"AB", "CD", "QUEST"}, opts)
	require.NoError(t, err)
	require.True(t, res.AllPlaced(), "failed: %v", res.Failed)
	require.Equal(t, "QUEST", res.Placed[0].Word, "placement order must be longest-first")
	requireResultInvariants(t, res)
}
