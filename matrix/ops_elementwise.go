// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise numeric comparison used to check kernels
//     against each other (MulNaive vs MulStrassen, fast path vs fallback).
//
// Determinism & Performance:
//   - Fixed loop order (flat 0..n²-1 or i→j); early exit on the first violation.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for same-sized matrices.
// MAIN DESCRIPTION:
//   - Returns (true,nil) if every cell satisfies the relation; (false,nil) otherwise.
//
// Behavior highlights:
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//   - Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - float32 products of random data drift with n; scale rtol accordingly
//     (1e-4 is comfortable up to n≈512 for values of similar magnitude).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameSize(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(float64(da.data[idx]), float64(db.data[idx]), rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	n := a.Size()
	var av, bv float32
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(float64(av), float64(bv), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b // same-signed infinities only
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
