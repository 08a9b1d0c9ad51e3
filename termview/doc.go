// Package termview renders a generated puzzle in the terminal, serving as
// the reference consumer of the core's outputs.
//
// What:
//
//   - Viewer draws the display grid with one keystroke toggling the solution
//     view: word letters highlighted, filler letters hidden — the "hide
//     other letters" presentation switch.
//   - The word sidebar annotates every placed word with an arrow derived
//     from its capsule geometry (overlay.CapsuleFor); failed words are
//     listed struck out at the bottom.
//   - Keys: s — toggle solution view, q or Escape — quit.
//
// Why:
//
//   - It consumes only Result, PlacedWord, and capsule geometry, never
//     re-deriving placement — the contract every renderer must follow. The
//     same data drives print and export surfaces unchanged.
//
// The viewer is deliberately synchronous and event-driven; it owns the
// screen for the duration of Run and restores the terminal on return.
// Construct with NewWithScreen and a tcell SimulationScreen to exercise it
// in tests.
package termview
