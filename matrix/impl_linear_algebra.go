// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and matrix-vector kernels shared by
// the multiplication engine: Add, Sub and MatVec. All functions perform strict
// fail-fast validation and return clear errors on size mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels and the operation tags used for error reporting.
//   - Run the *Dense fast path on the vek32 float32 kernels; keep an At/Set
//     fallback for any other Matrix implementation.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh result.

package matrix

import (
	"fmt"

	"github.com/viterin/vek/vek32"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMulNaive = "MulNaive"
	opStrassen = "MulStrassen"
	opMatVec   = "MatVec"
	opSplit    = "Split"
	opCombine  = "Combine"
	opFindMax  = "FindMax"
	opLanes    = "NewDenseFromLanes"
	opToLanes  = "ToLanes"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At. Kernels that only have a flat-slice implementation use it to
// accept any Matrix.
// Complexity: O(1) for *Dense, O(n²) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	n := m.Size()
	out, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// addSubDense is the unchecked *Dense kernel behind Add/Sub and the Strassen
// operand sums. The caller guarantees a.n == b.n.
// Complexity: O(n²) time and space.
func addSubDense(a, b *Dense, sign float32) *Dense {
	var data []float32
	if sign > 0 {
		data = vek32.Add(a.data, b.data)
	} else {
		data = vek32.Sub(a.data, b.data)
	}

	return &Dense{n: a.n, data: data, validateNaNInf: a.validateNaNInf}
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical sizes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameSize(a, b).
//   - Stage 2: Fast path if both are *Dense - vek32.Add / vek32.Sub over the flat buffers.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameSize).
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
//
// Notes:
//   - Element-wise float32 add/sub is exact per cell, so the vectorized path and
//     the fallback produce bit-identical results.
func addSub(a, b Matrix, sign float32, opTag string) (*Dense, error) {
	if err := ValidateBinarySameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	n := a.Size()

	// Fast path: *Dense with *Dense → one vectorized pass.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return addSubDense(da, db, sign), nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	res, err := NewDense(n)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j int
	var av, bv float32
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*n+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical sizes.
//   - Stage 2: If both are *Dense, run vek32.Add on the flat buffers; otherwise fall back to i→j.
//
// Inputs:
//   - a, b: operands of the same size.
//
// Returns:
//   - *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs; wrap an operand to hide its concrete type to force the fallback in tests.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract, fast path and complexity as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// MatVec computes y = M·x for an n×n matrix and a length-n vector.
// MAIN DESCRIPTION:
//   - Row-by-row dot products; the vector is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, n).
//   - Stage 2: *Dense fast path: y[i] = vek32.Dot(row_i, x) on the flat row slice.
//     Fallback: y[i] = Σ_j M[i,j]·x[j] in fixed j order.
//
// Returns:
//   - []float32 of length n.
//
// Errors:
//   - ErrNilMatrix (nil matrix or nil vector), ErrDimensionMismatch (len(x) != n).
//
// Complexity:
//   - Time O(n²), Space O(n).
//
// Notes:
//   - The vectorized dot product may sum in a different order than the
//     fallback; compare float results with a tolerance.
func MatVec(m Matrix, x []float32) ([]float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	n := m.Size()
	if err := ValidateVecLen(x, n); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float32, n)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			y[i] = vek32.Dot(d.data[i*n:(i+1)*n], x)
		}

		return y, nil
	}

	var i, j int
	var v, sum float32
	var err error
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
