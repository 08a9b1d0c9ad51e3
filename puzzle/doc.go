// Package puzzle orchestrates whole-puzzle generation: it resolves the
// active direction vectors, drives the per-word placement search, retries
// whole-grid generation and keeps the best attempt, then densifies the
// display grid with filler letters.
//
// What:
//
//   - Generate runs up to Options.Attempts independent generation attempts.
//     Each attempt starts from two fresh grids, places words longest-first
//     (longer words are harder to fit and should claim space before shorter
//     ones compete for the same cells), and fills the remaining display
//     cells with random letters.
//   - The attempt that placed the most words is retained; a later attempt
//     replaces it only by placing strictly more. An attempt placing every
//     word ends the loop early — a perfect attempt cannot be beaten.
//   - Result carries the dense display grid, the sparse solution grid, the
//     immutable PlacedWord records, and the words that could not be placed.
//
// Error taxonomy:
//
//   - direction.ErrNoDirections — configuration error, surfaced before any
//     attempt runs.
//   - ErrNoWords, grid.ErrGridSize, placement.ErrEmptyWord,
//     placement.ErrWordLetters — structurally invalid input, fail fast.
//   - ErrExhausted — the best attempt placed zero words; no usable puzzle.
//   - A best attempt that placed some but not all words is a SUCCESS with a
//     non-empty Result.Failed list: a puzzle missing a few words usually
//     beats no puzzle at all.
//
// Determinism:
//
//   - All randomness flows from Options.Seed (or an explicit Options.Rand).
//     Same words, size, configuration, and seed ⇒ byte-identical Result.
//     Seed 0 maps to a fixed default seed, so even "unseeded" runs
//     reproduce; see rng.go.
//
// Complexity:
//
//   - O(Attempts × W × N² × V × L) worst case for W words of length ≤ L on
//     an N×N grid with V vectors. Attempt caps bound total runtime; there is
//     no timeout or cancellation contract.
package puzzle
