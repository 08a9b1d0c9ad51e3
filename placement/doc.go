// Package placement searches for a legal position for one word on the
// current grid and commits it atomically to the display and solution
// buffers.
//
// What:
//
//   - Search enumerates every (start cell, vector) pair, keeps the legal
//     ones, scores each, and commits one of the top-scoring candidates
//     chosen uniformly at random.
//   - Legality: the word must fit entirely inside the grid along the vector,
//     and every traversed cell must be Empty or already hold exactly the
//     letter the word needs there. Conflicting overwrites never happen.
//   - Commit is all-or-nothing: on success every word letter is written to
//     both grids and a PlacedWord record is returned; on failure neither
//     grid is touched.
//
// Scoring:
//
//   - Overlap reward: one point per cell the word shares, letter-identical,
//     with an already placed word. Overlap densifies the puzzle.
//   - Crowding penalty: one point per filled 8-neighbor of each occupied
//     cell, excluding cells of the word itself. Crowding starves later
//     words of room while the grid is still sparse.
//   - The two are weighed against each other depending on current grid
//     density: below Options.SparseDensity the spacing penalty dominates,
//     above it the overlap reward does. The exact weights are tunable on
//     Options; any monotonic setting that rewards overlap and penalizes
//     crowding is sound.
//   - Ties at the maximum score break by uniform random choice, never by
//     scan order, to avoid positional bias toward the top-left corner.
//
// Complexity:
//
//   - Search: O(N² × V × L) time for an N×N grid, V vectors, word length L;
//     O(N²) transient memory for the candidate list.
//
// Errors:
//
//   - ErrNoPlacement: no legal candidate exists; the grids are unchanged.
//   - ErrEmptyWord, ErrWordLetters: malformed word (normalization is the
//     caller's job; these fail fast on contract violations).
//   - ErrNoVectors: empty vector set — a configuration error upstream.
//   - ErrGridMismatch: display and solution buffers are nil or differ in size.
package placement
