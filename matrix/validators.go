// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/halving checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → SameSize).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface also counts as nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize – Ensures matrices a and b have equal dimension.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b Matrix) error {
	if a.Size() != b.Size() {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize: %d vs %d", a.Size(), b.Size()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameSize – Composite: NotNil(a) → NotNil(b) → SameSize.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameSize(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameSize", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameSize", err)
	}

	return nil
}

// ValidateQuadrants – All four blocks non-nil and of one common size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateQuadrants(q0, q1, q2, q3 Matrix) error {
	for _, q := range [4]Matrix{q0, q1, q2, q3} {
		if err := ValidateNotNil(q); err != nil {
			return validatorErrorf("ValidateQuadrants", err)
		}
	}
	k := q0.Size()
	if q1.Size() != k || q2.Size() != k || q3.Size() != k {
		return validatorErrorf(
			fmt.Sprintf("ValidateQuadrants: sizes %d,%d,%d,%d", k, q1.Size(), q2.Size(), q3.Size()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float32, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateEven – Ensures n can be split into two halves.
//
// Errors: ErrOddSize.
// Complexity: O(1).
func ValidateEven(n int) error {
	if n%2 != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateEven: size %d", n), ErrOddSize)
	}

	return nil
}

// ValidateHalvable – Ensures n stays even at every halving step until it
// drops to threshold or below, i.e. n = m·2^k with m ≤ threshold.
//
// Inputs: n > 0, threshold ≥ 1.
// Errors: ErrOddSize naming the first level that cannot be split.
// Complexity: O(log n).
// AI-Hints: Run once before a recursive product so the call fails before any allocation.
func ValidateHalvable(n, threshold int) error {
	for size := n; size > threshold; size /= 2 {
		if err := ValidateEven(size); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateHalvable(%d, threshold %d)", n, threshold), err)
		}
	}

	return nil
}

// ValidateLaneWidth – Ensures width > 0 and n is a multiple of width.
//
// Errors: ErrInvalidLaneWidth.
// Complexity: O(1).
func ValidateLaneWidth(n, width int) error {
	if width <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateLaneWidth: width %d", width), ErrInvalidLaneWidth)
	}
	if n%width != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateLaneWidth: size %d not a multiple of %d", n, width), ErrInvalidLaneWidth)
	}

	return nil
}
