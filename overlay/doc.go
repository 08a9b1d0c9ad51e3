// Package overlay derives capsule (rounded-rectangle) geometry for
// highlighting a placed word, independent of any rendering surface.
//
// What:
//
//   - CapsuleFor turns a placement record plus a cell size into a Capsule:
//     the pixel center of the word's span, its length and width, and its
//     rotation angle in degrees.
//   - Length runs from the first cell's center to the last cell's center,
//     extended past each end so the outline visually caps the end letters
//     instead of stopping at their centers. Extension and width are
//     proportional to cell height; the default ratios are exported and a
//     ratio-explicit variant exists for callers that tune them.
//
// Why:
//
//   - Every presentation surface (screen, print, export) highlights words
//     the same way. Keeping the geometry a pure function of plain numbers
//     means it is implemented once, unit-tested with numeric assertions,
//     and never re-derived per renderer.
//
// Complexity:
//
//   - CapsuleFor: O(1), no side effects, no allocation beyond the result.
//
// Errors:
//
//   - ErrCellSize: non-positive cell dimensions.
//   - ErrEmptySpan: placement record with a non-positive length.
package overlay
