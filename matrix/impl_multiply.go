// SPDX-License-Identifier: MIT
// Package matrix - the multiplication engine: naive triple loop and the
// recursive Strassen product.
//
// Purpose:
//   - MulNaive: C[i,j] = Σ_k A[i,k]·B[k,j], O(n³). Also the base case of the recursion.
//   - MulStrassen: split both operands into quadrants, form seven products of
//     quadrant sums, recombine. O(n^log2(7)) above the threshold.
//
// Strassen step (quadrant indices as in impl_blocks.go):
//
//	P1 = (A0+A3)(B0+B3)    C0 = P1 + P4 - P5 + P7
//	P2 = (A2+A3) B0        C1 = P3 + P5
//	P3 = A0 (B1-B3)        C2 = P2 + P4
//	P4 = A3 (B2-B0)        C3 = P1 - P2 + P3 + P6
//	P5 = (A0+A1) B3
//	P6 = (A2-A0)(B0+B1)
//	P7 = (A1-A3)(B2+B3)
//
// Determinism & Performance:
//   - Strictly sequential; P1..P7 are evaluated in order.
//   - Every intermediate lives only for the duration of its recursive call.
//   - The halving precondition is checked once before any allocation.

package matrix

import (
	"context"
	"fmt"
)

// mulNaiveDense is the unchecked i→k→j kernel over flat buffers.
// For a fixed (i,j) the k-sum is accumulated in increasing k, the same order
// as the textbook i→j→k loop. Products are rounded to float32 before the
// add, which rules out fused multiply-add, so both paths agree bit for bit.
// Complexity: O(n³) time, O(n²) space.
func mulNaiveDense(a, b *Dense) *Dense {
	n := a.n
	res := &Dense{n: n, data: make([]float32, n*n), validateNaNInf: a.validateNaNInf}

	var i, j, k int
	var rowA, rowB, rowR int
	var av float32
	for i = 0; i < n; i++ {
		rowA = i * n
		rowR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowR+j] += float32(av * b.data[rowB+j])
			}
		}
	}

	return res
}

// MulNaive performs the standard product C = A × B of two n×n matrices.
// MAIN DESCRIPTION:
//   - Reference O(n³) product; the base case used by MulStrassen.
//
// Implementation:
//   - Stage 1: ValidateBinarySameSize(a, b).
//   - Stage 2: *Dense fast path: i→k→j over row-major strides.
//     Fallback: i→j→k through At with a scalar accumulator.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (sizes differ).
//
// Determinism:
//   - Fixed loop orders; identical summation order on both paths.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func MulNaive(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameSize(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return mulNaiveDense(da, db), nil
		}
	}

	n := a.Size()
	res, err := NewDense(n)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	var (
		i, j, k     int
		av, bv, acc float32
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMulNaive, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMulNaive, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += float32(av * bv)
			}
			res.data[i*n+j] = acc
		}
	}

	return res, nil
}

// MulStrassen computes C = A × B with the recursive Strassen scheme.
// It is MulStrassenContext with context.Background().
func MulStrassen(a, b Matrix, opts ...Option) (*Dense, error) {
	return MulStrassenContext(context.Background(), a, b, opts...)
}

// MulStrassenContext computes C = A × B with the recursive Strassen scheme,
// checking ctx at every recursive entry.
// MAIN DESCRIPTION:
//   - Divide-and-conquer product with seven sub-products per level and a
//     naive base case at or below the threshold.
//
// Implementation:
//   - Stage 1: resolve options; ValidateBinarySameSize(a, b).
//   - Stage 2: ValidateHalvable(n, threshold). On failure either return
//     ErrOddSize (default) or, with WithZeroPadding, embed both operands into
//     the smallest threshold·2^k ≥ n zero matrix.
//   - Stage 3: recurse (strassenDense); crop back to n×n when padded.
//
// Inputs:
//   - ctx: cancellation/deadline; must not be nil.
//   - a, b: n×n operands.
//   - opts: WithThreshold, WithZeroPadding.
//
// Returns:
//   - *Dense: the product, equal to MulNaive(a, b) up to float rounding.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOddSize, ctx.Err() (wrapped).
//
// Determinism:
//   - Fixed evaluation order P1..P7 and C0..C3.
//
// Complexity:
//   - Time O(n^2.807) above the threshold, Space O(n²) per recursion level.
//
// Notes:
//   - No partial result is ever returned: on error the result is nil.
//
// AI-Hints:
//   - WithThreshold(1) forces full recursion; useful to exercise the formulas on tiny inputs.
//   - Integer-valued operands keep every intermediate exact in float32 while
//     magnitudes stay below 2^24, which makes naive-vs-Strassen checks exact.
func MulStrassenContext(ctx context.Context, a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateBinarySameSize(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	n := a.Size()

	padTo := 0
	if err := ValidateHalvable(n, o.threshold); err != nil {
		if !o.zeroPadding {
			return nil, matrixErrorf(opStrassen, err)
		}
		padTo = paddedSize(n, o.threshold)
	}

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	if padTo > 0 {
		da, db = padDense(da, padTo), padDense(db, padTo)
	}

	res, err := strassenDense(ctx, da, db, o.threshold)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	if padTo > 0 {
		res = cropDense(res, n)
	}

	return res, nil
}

// strassenDense is the recursive step. Operands are same-sized *Dense whose
// size halves evenly down to the threshold (checked by the caller).
// Complexity: O(n^log2(7)).
func strassenDense(ctx context.Context, a, b *Dense, threshold int) (*Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.n <= threshold {
		return mulNaiveDense(a, b), nil
	}

	qa, qb := splitDense(a), splitDense(b)
	a0, a1, a2, a3 := qa[QTopLeft], qa[QTopRight], qa[QBottomLeft], qa[QBottomRight]
	b0, b1, b2, b3 := qb[QTopLeft], qb[QTopRight], qb[QBottomLeft], qb[QBottomRight]

	add := func(x, y *Dense) *Dense { return addSubDense(x, y, +1) }
	sub := func(x, y *Dense) *Dense { return addSubDense(x, y, -1) }

	// Operand pairs are built lazily so only one pair of sums is alive at a time.
	operands := [7]func() (*Dense, *Dense){
		func() (*Dense, *Dense) { return add(a0, a3), add(b0, b3) }, // P1
		func() (*Dense, *Dense) { return add(a2, a3), b0 },          // P2
		func() (*Dense, *Dense) { return a0, sub(b1, b3) },          // P3
		func() (*Dense, *Dense) { return a3, sub(b2, b0) },          // P4
		func() (*Dense, *Dense) { return add(a0, a1), b3 },          // P5
		func() (*Dense, *Dense) { return sub(a2, a0), add(b0, b1) }, // P6
		func() (*Dense, *Dense) { return sub(a1, a3), add(b2, b3) }, // P7
	}
	var p [7]*Dense
	var err error
	for idx, pair := range operands {
		x, y := pair()
		if p[idx], err = strassenDense(ctx, x, y, threshold); err != nil {
			return nil, err
		}
	}
	p1, p2, p3, p4, p5, p6, p7 := p[0], p[1], p[2], p[3], p[4], p[5], p[6]

	var c Quadrants
	c[QTopLeft] = add(sub(add(p1, p4), p5), p7)
	c[QTopRight] = add(p3, p5)
	c[QBottomLeft] = add(p2, p4)
	c[QBottomRight] = add(add(sub(p1, p2), p3), p6)

	return combineDense(c), nil
}

// paddedSize returns the smallest threshold·2^k that is ≥ n.
func paddedSize(n, threshold int) int {
	size := threshold
	for size < n {
		size *= 2
	}

	return size
}

// padDense embeds m into the top-left corner of a zero size×size matrix.
// Complexity: O(size²).
func padDense(m *Dense, size int) *Dense {
	out := &Dense{n: size, data: make([]float32, size*size), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.n; i++ {
		copy(out.data[i*size:i*size+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// cropDense copies the leading n×n block of m.
// Complexity: O(n²).
func cropDense(m *Dense, n int) *Dense {
	out := &Dense{n: n, data: make([]float32, n*n), validateNaNInf: m.validateNaNInf}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], m.data[i*m.n:i*m.n+n])
	}

	return out
}
