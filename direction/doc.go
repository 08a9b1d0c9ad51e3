// Package direction resolves a declarative direction configuration into the
// concrete set of unit step vectors a placement search must try.
//
// What:
//
//   - Config holds four independent flags: Horizontal, Vertical, Diagonal,
//     and Reverse.
//   - Vector is one (Δrow, Δcol) unit step with both components in {-1,0,1},
//     never (0,0).
//   - Resolve maps a Config to between 1 and 8 Vectors:
//     Horizontal → (0,1); with Reverse also (0,-1).
//     Vertical   → (1,0); with Reverse also (-1,0).
//     Diagonal   → (1,1) and (1,-1); with Reverse also (-1,1) and (-1,-1).
//
// Why:
//
//   - Reverse alone enables nothing: it mirrors whichever axes are on, so a
//     Config with every axis flag false is a configuration error regardless
//     of Reverse. Callers must treat ErrNoDirections as fatal and never
//     attempt placement with an empty vector set.
//
// Complexity:
//
//   - Resolve: O(1) time, at most 8 vectors of memory.
//
// Errors:
//
//   - ErrNoDirections: no axis flag (Horizontal/Vertical/Diagonal) is set.
package direction
