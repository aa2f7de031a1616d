// SPDX-License-Identifier: MIT
// Package bench - deterministic operand generation.
//
// Purpose:
//   - Fill matrices and vectors with reproducible integer-valued float32 data
//     drawn from a caller-owned *rand.Rand.

package bench

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/strassen/matrix"
)

// DefaultMax is the exclusive upper bound of generated values.
const DefaultMax = 10000000

// FillRandom writes integers drawn uniformly from [0, max) into every cell of
// m, row by row. The same seed always produces the same matrix.
//
// Errors: ErrInvalidMax (max ≤ 0), or the first Set failure.
// Complexity: O(n²).
func FillRandom(m matrix.Matrix, rng *rand.Rand, max int) error {
	if max <= 0 {
		return fmt.Errorf("FillRandom: %d: %w", max, ErrInvalidMax)
	}
	n := m.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, float32(rng.Intn(max))); err != nil {
				return fmt.Errorf("FillRandom: %w", err)
			}
		}
	}

	return nil
}

// RandomVector returns n integers drawn uniformly from [0, max).
func RandomVector(n int, rng *rand.Rand, max int) ([]float32, error) {
	if max <= 0 {
		return nil, fmt.Errorf("RandomVector: %d: %w", max, ErrInvalidMax)
	}
	if n <= 0 {
		return nil, fmt.Errorf("RandomVector: %w", matrix.ErrInvalidSize)
	}
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(rng.Intn(max))
	}

	return v, nil
}
