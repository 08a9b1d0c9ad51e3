// Package grid implements the square letter buffer that word-search
// generation mutates, plus the Rand interface through which all randomness
// is injected.
//
// What:
//
//   - Grid is an N×N buffer of cells, each Empty or an uppercase letter A–Z.
//   - Reads and writes are bounds-checked: out-of-range reads report absent,
//     out-of-range writes are no-ops. Callers that need hard bounds
//     guarantees check InBounds themselves before committing.
//   - FillRemaining replaces every Empty cell with a uniformly random letter,
//     leaving placed letters untouched.
//   - Rand is the injected source of uniform randomness; *math/rand.Rand
//     satisfies it. No package here ever reaches for ambient randomness.
//
// Why:
//
//   - Two parallel grids drive a generation attempt: the display grid
//     (eventually fully dense) and the solution grid (word letters only).
//     Both are plain Grids; the distinction is purely in how they are used.
//
// Complexity:
//
//   - Get/Set/InBounds: O(1).
//   - FillRemaining, Clone, Density: O(N²).
//
// Errors:
//
//   - ErrGridSize: requested size is not positive.
package grid
