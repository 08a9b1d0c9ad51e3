// Package wordsearch generates word-search puzzles: it packs a list of
// words onto a square letter grid along up to eight compass directions,
// sharing cells only where the overlapping letters agree, then fills the
// remaining cells with random letters.
//
// 🚀 What is wordsearch?
//
//	A deterministic, zero-I/O generation library built from small packages:
//		• grid/      — the square letter buffer + injected randomness source
//		• direction/ — direction flags → concrete unit step vectors
//		• placement/ — single-word placement search with heuristic scoring
//		• puzzle/    — whole-puzzle orchestration: best-of retry, remainder fill
//		• overlay/   — capsule geometry for highlighting placed words
//		• termview/  — reference terminal renderer (tcell)
//
// ✨ Why choose wordsearch?
//
//   - Deterministic – same seed ⇒ identical puzzle; randomness is injected,
//     never ambient
//   - Honest results – words that did not fit are reported, not hidden
//   - Pure Go core – no cgo, no I/O, no hidden state between runs
//   - Renderer-agnostic – placements and capsule geometry are plain data,
//     usable from any presentation surface (screen, print, export)
//
// Quick ASCII example (5×5, CAT across, DOG down, no shared cell):
//
//	C A T · ·
//	D · · · ·
//	O · · · ·
//	G · · · ·
//	· · · · ·
//
// Typical usage:
//
//	res, err := puzzle.Generate([]string{"CAT", "DOG"}, puzzle.Options{
//		Size:       5,
//		Directions: direction.Config{Horizontal: true, Vertical: true},
//		Seed:       42,
//	})
//
// Dive into each package's doc.go for contracts, complexity, and the error
// taxonomy.
//
//	go get github.com/katalvlaran/wordsearch
package wordsearch
