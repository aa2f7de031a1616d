// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the dense kernels.
// This file intentionally contains ONLY domain-facing types (the Matrix
// interface, Element and Quadrants). Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

import "math"

// Matrix represents a square, mutable N×N array of float32 values.
// Kernels accept Matrix and take a flat-slice fast path when handed *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(n²)).
type Matrix interface {
	// Size returns N, the number of rows (== number of columns).
	// Complexity: O(1).
	Size() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside [0, Size()).
	// Complexity: O(1).
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices, ErrNaNInf under the numeric policy.
	// Complexity: O(1).
	Set(i, j int, v float32) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(n²).
	Clone() Matrix
}

// Element is a cell candidate for the maximum search: a value and its coordinates.
// It has value semantics; FindMax takes one as a seed and returns an updated copy.
type Element struct {
	Value float32 // cell value
	Row   int     // zero-based row index
	Col   int     // zero-based column index
}

// SeedElement returns the conventional starting point for FindMax:
// Value = -Inf at (0,0), so that any finite cell is a strict improvement.
// Complexity: O(1).
func SeedElement() Element {
	return Element{Value: float32(math.Inf(-1))}
}

// Quadrant positions inside Quadrants, in the fixed order produced by Split.
const (
	QTopLeft     = 0 // rows [0,k), cols [0,k)
	QTopRight    = 1 // rows [0,k), cols [k,2k)
	QBottomLeft  = 2 // rows [k,2k), cols [0,k)
	QBottomRight = 3 // rows [k,2k), cols [k,2k)
)

// Quadrants holds the four k×k blocks of a 2k×2k matrix, indexed by the
// Q* constants. Each block owns its storage (no aliasing with the source).
type Quadrants [4]*Dense
