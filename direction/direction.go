// Package direction defines the direction configuration, its sentinel error,
// and the Config → []Vector resolution.
package direction

import "errors"

// ErrNoDirections indicates a Config with no axis flag set; Reverse alone
// enables nothing.
var ErrNoDirections = errors.New("direction: at least one of horizontal, vertical, diagonal must be enabled")

// Vector is one unit placement step. Both components are in {-1,0,1} and
// never both zero.
type Vector struct {
	DR int // Δrow per step
	DC int // Δcol per step
}

// Config selects which placement orientations are active.
type Config struct {
	// Horizontal enables left-to-right placement.
	Horizontal bool
	// Vertical enables top-to-bottom placement.
	Vertical bool
	// Diagonal enables the two downward diagonals (down-right, down-left).
	Diagonal bool
	// Reverse additionally enables the mirror of every active axis.
	Reverse bool
}

// DefaultConfig returns the most common setting: all axes on, no reversed
// orientations.
func DefaultConfig() Config {
	return Config{Horizontal: true, Vertical: true, Diagonal: true}
}

// Resolve returns the concrete vector set implied by c, between 1 and 8
// vectors in a stable order. Returns ErrNoDirections when no axis flag is
// set.
// Complexity: O(1).
func (c Config) Resolve() ([]Vector, error) {
	if !c.Horizontal && !c.Vertical && !c.Diagonal {
		return nil, ErrNoDirections
	}

	vs := make([]Vector, 0, 8)
	if c.Horizontal {
		vs = append(vs, Vector{0, 1})
		if c.Reverse {
			vs = append(vs, Vector{0, -1})
		}
	}
	if c.Vertical {
		vs = append(vs, Vector{1, 0})
		if c.Reverse {
			vs = append(vs, Vector{-1, 0})
		}
	}
	if c.Diagonal {
		vs = append(vs, Vector{1, 1}, Vector{1, -1})
		if c.Reverse {
			vs = append(vs, Vector{-1, 1}, Vector{-1, -1})
		}
	}

	return vs, nil
}
