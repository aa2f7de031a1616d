// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide scan-style statistics over a matrix. Currently FindMax: the
//     greatest cell and its coordinates.
//
// Exposed API:
//   - FindMax(M, seed) -> (Element, error) // strict '>' scan, first maximum wins
//
// Determinism & Performance:
//   - Fixed i→j traversal; a tie never replaces an earlier cell.
//   - Dense fast path walks the flat buffer without At.

package matrix

// FindMax returns the greatest cell of m, starting from seed.
// MAIN DESCRIPTION:
//   - Linear row-major scan keeping the running best; a cell replaces the
//     best only when it is strictly greater.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: scan (flat buffer for *Dense, At otherwise).
//
// Behavior highlights:
//   - Duplicate maxima resolve to the first one in row-major order.
//   - If no cell beats seed.Value, seed is returned unchanged.
//
// Inputs:
//   - m: matrix to scan.
//   - seed: starting candidate, usually SeedElement().
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(1).
func FindMax(m Matrix, seed Element) (Element, error) {
	if err := ValidateNotNil(m); err != nil {
		return seed, matrixErrorf(opFindMax, err)
	}
	best := seed

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if v > best.Value {
				best = Element{Value: v, Row: idx / d.n, Col: idx % d.n}
			}
		}

		return best, nil
	}

	n := m.Size()
	var i, j int
	var v float32
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return seed, matrixErrorf(opFindMax, err)
			}
			if v > best.Value {
				best = Element{Value: v, Row: i, Col: j}
			}
		}
	}

	return best, nil
}
