package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/puzzle"
)

// benchWords is a realistic medium word list for generation benchmarks.
var benchWords = []string{
	"GENERATOR", "ALGORITHM", "HEURISTIC", "PLACEMENT", "DIRECTION",
	"OVERLAP", "CAPSULE", "DENSITY", "PUZZLE", "SEARCH",
	"VECTOR", "LETTER", "GRID", "WORD", "CELL",
}

// BenchmarkGenerate_15x15 measures whole-puzzle generation with all eight
// orientations on a standard 15×15 grid.
// Complexity: O(Attempts × W × N² × V × L)
func BenchmarkGenerate_15x15(b *testing.B) {
	opts := puzzle.Options{
		Size:       15,
		Directions: direction.Config{Horizontal: true, Vertical: true, Diagonal: true, Reverse: true},
		Seed:       42,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := puzzle.Generate(benchWords, opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_25x25 measures the largest routinely used grid size.
func BenchmarkGenerate_25x25(b *testing.B) {
	opts := puzzle.Options{
		Size:       25,
		Directions: direction.Config{Horizontal: true, Vertical: true, Diagonal: true, Reverse: true},
		Seed:       42,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := puzzle.Generate(benchWords, opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
