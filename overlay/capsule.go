// Package overlay computes placed-word capsule geometry.
package overlay

import (
	"errors"
	"math"

	"github.com/katalvlaran/wordsearch/placement"
)

// Sentinel errors for geometry derivation.
var (
	// ErrCellSize indicates non-positive cell dimensions.
	ErrCellSize = errors.New("overlay: cell dimensions must be positive")
	// ErrEmptySpan indicates a placement record with a non-positive length.
	ErrEmptySpan = errors.New("overlay: placement length must be positive")
)

// Default capsule proportions, both relative to cell height.
const (
	// DefaultEndExtension extends the capsule past each end cell's center so
	// the outline caps the end letters.
	DefaultEndExtension = 0.35
	// DefaultWidthRatio sets the capsule's width.
	DefaultWidthRatio = 0.8
)

// Capsule describes a rounded-rectangle outline spanning a placed word, in
// the pixel space defined by the cell size handed to CapsuleFor. Angle is in
// degrees, counterclockwise-negative per screen coordinates (y grows down),
// so a down-right diagonal reports +45.
type Capsule struct {
	CenterX float64
	CenterY float64
	Length  float64
	Width   float64
	Angle   float64
}

// CapsuleFor derives the capsule for p on a surface whose cells measure
// cellWidth×cellHeight pixels, using the default proportions.
// Complexity: O(1).
func CapsuleFor(p placement.PlacedWord, cellWidth, cellHeight float64) (Capsule, error) {
	return CapsuleForRatios(p, cellWidth, cellHeight, DefaultEndExtension, DefaultWidthRatio)
}

// CapsuleForRatios is CapsuleFor with explicit end-extension and width
// ratios (both relative to cell height). The ratios are a presentation
// tuning choice, not semantics.
// Complexity: O(1).
func CapsuleForRatios(p placement.PlacedWord, cellWidth, cellHeight, endExtension, widthRatio float64) (Capsule, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return Capsule{}, ErrCellSize
	}
	if p.Length < 1 {
		return Capsule{}, ErrEmptySpan
	}

	endRow, endCol := p.End()
	startX := (float64(p.Col) + 0.5) * cellWidth
	startY := (float64(p.Row) + 0.5) * cellHeight
	endX := (float64(endCol) + 0.5) * cellWidth
	endY := (float64(endRow) + 0.5) * cellHeight

	dx, dy := endX-startX, endY-startY
	span := math.Hypot(dx, dy)
	ext := endExtension * cellHeight

	return Capsule{
		CenterX: (startX + endX) / 2,
		CenterY: (startY + endY) / 2,
		Length:  span + 2*ext,
		Width:   widthRatio * cellHeight,
		Angle:   math.Atan2(dy, dx) * 180 / math.Pi,
	}, nil
}
