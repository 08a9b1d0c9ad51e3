// Package puzzle defines generation options, the result record, and
// sentinel errors.
package puzzle

import (
	"errors"

	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/grid"
	"github.com/katalvlaran/wordsearch/placement"
)

// Default attempt caps. DefaultAttempts bounds whole-grid retries;
// DefaultWordAttempts bounds per-word search calls within one attempt.
const (
	DefaultAttempts     = 12
	DefaultWordAttempts = 3
)

// Sentinel errors for generation.
var (
	// ErrNoWords indicates an empty word list; a zero-word "success" would be
	// indistinguishable from exhaustion, so it fails fast instead.
	ErrNoWords = errors.New("puzzle: word list must be non-empty")
	// ErrExhausted indicates every attempt placed zero words; no usable
	// puzzle exists for this input.
	ErrExhausted = errors.New("puzzle: no attempt placed any word")
)

// Options configures whole-puzzle generation.
//
// Fields:
//   - Size       — grid side length N; must be positive.
//   - Directions — which orientations placement may use; at least one axis
//     flag must be set.
//   - Seed       — drives all randomness when Rand is nil. Seed 0 maps to a
//     fixed default seed (reproducible "unseeded" runs); pass a varying seed
//     for varying puzzles.
//   - Rand       — optional explicit randomness source. When set it is used
//     verbatim for every attempt and Seed is ignored.
//   - Attempts   — outer whole-grid retry cap; <1 means DefaultAttempts.
//   - WordAttempts — per-word search call cap within one attempt; <1 means
//     DefaultWordAttempts. The search scans exhaustively, so a call that
//     found no candidate is never retried against the unchanged grid.
//   - Placement  — scoring tunables; the zero value means
//     placement.DefaultOptions().
type Options struct {
	Size         int
	Directions   direction.Config
	Seed         int64
	Rand         grid.Rand
	Attempts     int
	WordAttempts int
	Placement    placement.Options
}

// DefaultOptions returns generation options for an N×N puzzle with all
// forward directions enabled and default attempt caps.
func DefaultOptions(size int) Options {
	return Options{
		Size:         size,
		Directions:   direction.DefaultConfig(),
		Attempts:     DefaultAttempts,
		WordAttempts: DefaultWordAttempts,
		Placement:    placement.DefaultOptions(),
	}
}

// Result is the outcome of Generate. DisplayGrid is fully dense; SolutionGrid
// holds only word letters. Placed is the single source of truth for where
// words lie — renderers derive geometry from it and never re-derive
// placement. Failed lists the words no attempt could fit, for user-facing
// diagnostics.
type Result struct {
	DisplayGrid  *grid.Grid
	SolutionGrid *grid.Grid
	Placed       []placement.PlacedWord
	Failed       []string
	Attempts     int // outer attempts actually run
}

// AllPlaced reports whether every requested word was placed.
func (r Result) AllPlaced() bool {
	return len(r.Failed) == 0
}
