// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidMax indicates a non-positive bound for generated values.
	ErrInvalidMax = errors.New("bench: max must be > 0")

	// ErrInvalidConfig indicates a run configuration that cannot be executed.
	ErrInvalidConfig = errors.New("bench: invalid run configuration")

	// ErrEmptyPlan indicates a plan file without runs.
	ErrEmptyPlan = errors.New("bench: plan has no runs")

	// ErrMismatch indicates that Strassen and naive products disagree.
	ErrMismatch = errors.New("bench: strassen and naive products differ")
)
