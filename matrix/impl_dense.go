// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, square) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot kernels (impl_linear_algebra.go, impl_multiply.go) operate on the flat data slice directly.
//   - Use NewDenseFrom for literal fixtures, NewDenseFromFlat to adopt an existing buffer without copying.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); NewDenseFrom: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"               // method tag used in error wrappers
	ctxSet      = "Set"              // method tag used in error wrappers
	ctxApply    = "Apply"            // method tag used in error wrappers
	ctxFrom     = "NewDenseFrom"     // ctor tag for row-slice ingestion
	ctxFromFlat = "NewDenseFromFlat" // ctor tag for flat-buffer adoption
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <sentinel>".
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite32 reports whether v is NaN or ±Inf.
func isNonFinite32(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Dense is a concrete row-major square matrix.
//   - n holds the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	n              int       // dimension, fixed at construction
	data           []float32 // contiguous row-major storage (len == n*n)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict size validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidSize.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Inputs:
//   - n: positive dimension.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidSize (n ≤ 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Dense{
		n:              n,
		data:           make([]float32, n*n), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is the internal constructor used by kernels and option-aware ctors.
// Complexity: O(n²).
func newDenseWithPolicy(n int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewDenseFrom builds an n×n Dense from a square slice of rows, copying values.
// MAIN DESCRIPTION:
//   - Ingest literal data (fixtures, decoded files) into flat storage.
//
// Implementation:
//   - Stage 1: n = len(rows); n==0 ⇒ ErrInvalidSize.
//   - Stage 2: every row must have exactly n entries; else ErrDimensionMismatch.
//   - Stage 3: copy row i into data[i*n:(i+1)*n], enforcing the numeric policy.
//
// Inputs:
//   - rows: n rows of n values each.
//   - opts: WithNoValidateNaNInf to accept NaN/±Inf.
//
// Errors:
//   - ErrInvalidSize, ErrDimensionMismatch, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - The result never aliases rows; later edits to rows do not affect it.
func NewDenseFrom(rows [][]float32, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	n := len(rows)
	m, err := newDenseWithPolicy(n, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFrom, i, len(rows[i]), n, ErrDimensionMismatch)
		}
		if m.validateNaNInf {
			for j = 0; j < n; j++ {
				if isNonFinite32(rows[i][j]) {
					return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
				}
			}
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// NewDenseFromFlat adopts an existing row-major buffer of length n*n.
// The buffer is NOT copied: the returned Dense owns it from now on and the
// caller must not keep writing to it.
//
// Errors: ErrInvalidSize (n ≤ 0), ErrDimensionMismatch (len(data) != n*n),
// ErrNaNInf under the numeric policy.
// Complexity: O(1) without validation, O(n²) with the finite-value scan.
func NewDenseFromFlat(n int, data []float32, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromFlat, ErrInvalidSize)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%s: len %d, want %d: %w", ctxFromFlat, len(data), n*n, ErrDimensionMismatch)
	}
	if o.validateNaNInf {
		for idx, v := range data {
			if isNonFinite32(v) {
				return nil, denseErrorf(ctxFromFlat, idx/n, idx%n, ErrNaNInf)
			}
		}
	}

	return &Dense{n: n, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// Size returns the dimension n. No side effects.
// Complexity: O(1).
func (m *Dense) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite32(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(n²).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed twin of Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp, validateNaNInf: m.validateNaNInf}
}

// ToRows copies the matrix out as n row slices.
// Complexity: O(n²) time and space.
func (m *Dense) ToRows() [][]float32 {
	out := make([][]float32, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]float32, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, debugging and the CLI --print flag.
// Complexity: O(n²).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(n²).
func (m *Dense) Do(f func(i, j int, v float32) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (if policy ON).
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - This is how fill collaborators (random sources) populate a matrix in one pass.
func (m *Dense) Apply(f func(i, j int, v float32) float32) error {
	var i, j, base int
	var nv float32
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite32(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
