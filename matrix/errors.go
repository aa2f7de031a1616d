// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and tests
// MUST check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with an operation tag via
// matrixErrorf ("Mul: ...: matrix: dimension mismatch"); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> size -> dimension mismatch -> halving precondition -> numeric policy.

var (
	// ErrInvalidSize is returned when a requested matrix size is not positive.
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g., Add of a 3×3 and a 4×4, or MatVec with len(v) != n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOddSize signals that a matrix that must be split into quadrants has
	// an odd size, i.e. it cannot be halved on the way down to the threshold.
	ErrOddSize = errors.New("matrix: odd size cannot be split into quadrants")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidLaneWidth indicates a lane width that is not positive or does
	// not evenly divide the logical matrix size.
	ErrInvalidLaneWidth = errors.New("matrix: invalid lane width")
)
