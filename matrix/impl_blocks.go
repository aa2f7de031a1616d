// SPDX-License-Identifier: MIT
// Package matrix - quadrant decomposition (Split) and reassembly (Combine).
//
// Purpose:
//   - Partition a 2k×2k matrix into four k×k blocks and glue four blocks back.
//   - Provide the structural primitive behind MulStrassen.
//
// Layout (k = n/2):
//
//	+----+----+
//	| Q0 | Q1 |   Q0 = QTopLeft,    Q1 = QTopRight
//	+----+----+
//	| Q2 | Q3 |   Q2 = QBottomLeft, Q3 = QBottomRight
//	+----+----+
//
// Determinism & Performance:
//   - Blocks are copied row by row with copy(); no aliasing with the source.
//   - Combine(Split(M)) reproduces M exactly.

package matrix

// splitDense copies the four quadrants of an even-sized *Dense.
// The caller guarantees m.n is even. Quadrants inherit m's numeric policy.
// Complexity: O(n²) time and space.
func splitDense(m *Dense) Quadrants {
	n := m.n
	k := n / 2
	var q Quadrants
	for p := range q {
		q[p] = &Dense{n: k, data: make([]float32, k*k), validateNaNInf: m.validateNaNInf}
	}

	var i, top, bottom int
	for i = 0; i < k; i++ {
		top = i * n          // row i of the source
		bottom = (i + k) * n // row i+k of the source
		dst := i * k         // row i of each quadrant
		copy(q[QTopLeft].data[dst:dst+k], m.data[top:top+k])
		copy(q[QTopRight].data[dst:dst+k], m.data[top+k:top+n])
		copy(q[QBottomLeft].data[dst:dst+k], m.data[bottom:bottom+k])
		copy(q[QBottomRight].data[dst:dst+k], m.data[bottom+k:bottom+n])
	}

	return q
}

// combineDense places four k×k blocks into a fresh 2k×2k *Dense.
// The caller guarantees all blocks share size k.
// Complexity: O(n²) time and space.
func combineDense(q Quadrants) *Dense {
	k := q[QTopLeft].n
	n := 2 * k
	res := &Dense{n: n, data: make([]float32, n*n), validateNaNInf: q[QTopLeft].validateNaNInf}

	var i, top, bottom, src int
	for i = 0; i < k; i++ {
		top = i * n
		bottom = (i + k) * n
		src = i * k
		copy(res.data[top:top+k], q[QTopLeft].data[src:src+k])
		copy(res.data[top+k:top+n], q[QTopRight].data[src:src+k])
		copy(res.data[bottom:bottom+k], q[QBottomLeft].data[src:src+k])
		copy(res.data[bottom+k:bottom+n], q[QBottomRight].data[src:src+k])
	}

	return res
}

// Split partitions m into its four quadrants.
// MAIN DESCRIPTION:
//   - Return top-left, top-right, bottom-left, bottom-right blocks of size n/2.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateEven(n).
//   - Stage 2: materialize m as *Dense (no copy when it already is one).
//   - Stage 3: copy each half-row into its quadrant.
//
// Returns:
//   - Quadrants indexed by QTopLeft..QBottomRight.
//
// Errors:
//   - ErrNilMatrix, ErrOddSize (n odd, including n == 1).
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - The quadrants own their storage; mutating them never touches m.
func Split(m Matrix) (Quadrants, error) {
	if err := ValidateNotNil(m); err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}
	if err := ValidateEven(m.Size()); err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}
	d, err := asDense(m)
	if err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}

	return splitDense(d), nil
}

// Combine assembles four k×k blocks into one 2k×2k matrix with q0 at (0,0),
// q1 at (0,k), q2 at (k,0) and q3 at (k,k).
//
// Errors:
//   - ErrNilMatrix (any block nil), ErrDimensionMismatch (blocks of different sizes).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Combine(q0, q1, q2, q3 Matrix) (*Dense, error) {
	if err := ValidateQuadrants(q0, q1, q2, q3); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	var q Quadrants
	for p, b := range [4]Matrix{q0, q1, q2, q3} {
		d, err := asDense(b)
		if err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
		q[p] = d
	}

	return combineDense(q), nil
}

// CombineQuadrants is Combine over a Quadrants value, the inverse of Split.
// A nil block is reported as ErrNilMatrix.
func CombineQuadrants(q Quadrants) (*Dense, error) {
	return Combine(q[QTopLeft], q[QTopRight], q[QBottomLeft], q[QBottomRight])
}
