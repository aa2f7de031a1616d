// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data integer-valued and finite so float32 products stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an n×n *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from literal rows or fails the test.
func MustFrom(tb testing.TB, rows [][]float32) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float32) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float32 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomIntFill FILLS m with integers drawn uniformly from [-max, max).
// Implementation:
//   - rng := rand.New(rand.NewSource(seed)); row-major Set.
//
// Notes:
//   - With small max the exact result of any n×n product stays below 2^24,
//     so naive and Strassen products can be compared bitwise.
func RandomIntFill(tb testing.TB, m matrix.Matrix, seed int64, max int) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			MustSet(tb, m, i, j, float32(rng.Intn(2*max)-max))
		}
	}
}

// RandIntDense RETURNS a new n×n Dense filled by RandomIntFill.
func RandIntDense(tb testing.TB, n int, seed int64, max int) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, n)
	RandomIntFill(tb, m, seed, max)

	return m
}

// CompareExact FAILS the test on the first cell where a and b differ.
func CompareExact(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	if want.Size() != got.Size() {
		tb.Fatalf("size mismatch: want %d, got %d", want.Size(), got.Size())
	}
	n := want.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, g := MustAt(tb, want, i, j), MustAt(tb, got, i, j)
			if w != g {
				tb.Fatalf("cell (%d,%d): want %v, got %v", i, j, w, g)
			}
		}
	}
}
