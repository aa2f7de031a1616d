// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit size and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized n×n *Dense.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(n²).
func NewZeros(n int) (*Dense, error) {
	return NewDense(n)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
//
// AI-Hints: MatVec(I, x) == x and MulNaive(I, A) == A make it a handy oracle in tests.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same size as m.
// Complexity: O(n²).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Size())
}

// ---------- Arithmetic & products (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b. Complexity: O(n²).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(n²).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for MulNaive. Complexity: O(n³).
func Product(a, b Matrix) (*Dense, error) { return MulNaive(a, b) }

// Strassen is an alias for MulStrassen. Complexity: O(n^2.807).
func Strassen(a, b Matrix, opts ...Option) (*Dense, error) { return MulStrassen(a, b, opts...) }

// MatVecMul is an alias for MatVec: y = m·x. Complexity: O(n²).
func MatVecMul(m Matrix, x []float32) ([]float32, error) { return MatVec(m, x) }

// Max returns the greatest cell of m, scanning from SeedElement().
// Complexity: O(n²).
func Max(m Matrix) (Element, error) { return FindMax(m, SeedElement()) }
