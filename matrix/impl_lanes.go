// SPDX-License-Identifier: MIT
// Package matrix - lane-grouped layout conversion.
//
// Purpose:
//   - Convert between the flat row-major Dense and a lane-grouped layout in
//     which every row is a sequence of fixed-width lanes (one lane per vector
//     register), as produced by vectorized storage variants.
//   - Report the float32 lane count of the running CPU.
//
// Layout:
//
//	lanes[i][l][z] == M[i, l*width + z],  0 ≤ l < n/width, 0 ≤ z < width
//
// Notes:
//   - The layout exists only at construction time; no kernel consumes it.

package matrix

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Lane counts for float32 (4 bytes) per vector register width.
const (
	lanesAVX512 = 16 // 512-bit
	lanesAVX    = 8  // 256-bit
	lanesSIMD   = 4  // 128-bit (SSE2, NEON)
)

// NativeLaneWidth returns how many float32 values fit one vector register of
// the widest unit the CPU reports, or DefaultLaneWidth when none is known.
// Complexity: O(1).
func NativeLaneWidth() int {
	switch {
	case cpu.X86.HasAVX512F:
		return lanesAVX512
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return lanesAVX
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return lanesSIMD
	default:
		return DefaultLaneWidth
	}
}

// NewDenseFromLanes rebuilds a flat Dense from a lane-grouped source.
// MAIN DESCRIPTION:
//   - Row i of the result is the concatenation of lanes[i][0], lanes[i][1], ...
//
// Implementation:
//   - Stage 1: reject width ≤ 0, then n = len(lanes) > 0 and n % width == 0.
//   - Stage 2: each row must hold exactly n/width lanes of exactly width values.
//   - Stage 3: copy lane l of row i into columns [l*width, (l+1)*width).
//
// Errors:
//   - ErrInvalidSize (no rows), ErrInvalidLaneWidth (width ≤ 0 or n % width != 0),
//     ErrDimensionMismatch (wrong lane count or lane length), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDenseFromLanes(lanes [][][]float32, width int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if width <= 0 {
		return nil, matrixErrorf(opLanes, ValidateLaneWidth(len(lanes), width))
	}
	n := len(lanes)
	m, err := newDenseWithPolicy(n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opLanes, err)
	}
	if err = ValidateLaneWidth(n, width); err != nil {
		return nil, matrixErrorf(opLanes, err)
	}
	perRow := n / width

	var i, l, z, off int
	for i = 0; i < n; i++ {
		if len(lanes[i]) != perRow {
			return nil, matrixErrorf(opLanes, fmt.Errorf("row %d has %d lanes, want %d: %w", i, len(lanes[i]), perRow, ErrDimensionMismatch))
		}
		for l = 0; l < perRow; l++ {
			lane := lanes[i][l]
			if len(lane) != width {
				return nil, matrixErrorf(opLanes, fmt.Errorf("lane (%d,%d) has %d values, want %d: %w", i, l, len(lane), width, ErrDimensionMismatch))
			}
			off = i*n + l*width
			for z = 0; z < width; z++ {
				if m.validateNaNInf && isNonFinite32(lane[z]) {
					return nil, matrixErrorf(opLanes, denseErrorf(ctxSet, i, l*width+z, ErrNaNInf))
				}
				m.data[off+z] = lane[z]
			}
		}
	}

	return m, nil
}

// ToLanes is the inverse of NewDenseFromLanes: it regroups every row of m
// into n/width lanes of width values. The result never aliases m.
//
// Errors: ErrNilMatrix, ErrInvalidLaneWidth.
// Complexity: O(n²).
func ToLanes(m Matrix, width int) ([][][]float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToLanes, err)
	}
	n := m.Size()
	if err := ValidateLaneWidth(n, width); err != nil {
		return nil, matrixErrorf(opToLanes, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToLanes, err)
	}
	perRow := n / width

	out := make([][][]float32, n)
	for i := 0; i < n; i++ {
		row := make([][]float32, perRow)
		for l := 0; l < perRow; l++ {
			lane := make([]float32, width)
			copy(lane, d.data[i*n+l*width:i*n+(l+1)*width])
			row[l] = lane
		}
		out[i] = row
	}

	return out, nil
}
