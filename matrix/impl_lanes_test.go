// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestNativeLaneWidth reports one of the known register widths.
func TestNativeLaneWidth(t *testing.T) {
	t.Parallel()

	require.Contains(t, []int{4, 8, 16}, matrix.NativeLaneWidth())
}

// TestNewDenseFromLanes_Literal checks lanes[i][l][z] == M[i, l*width+z].
func TestNewDenseFromLanes_Literal(t *testing.T) {
	t.Parallel()

	lanes := [][][]float32{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
		{{9, 10}, {11, 12}},
		{{13, 14}, {15, 16}},
	}
	m, err := matrix.NewDenseFromLanes(lanes, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}, m.ToRows())

	back, err := matrix.ToLanes(m, 2)
	require.NoError(t, err)
	require.Equal(t, lanes, back)
}

// TestLanes_RoundTrip converts random matrices through several widths.
func TestLanes_RoundTrip(t *testing.T) {
	t.Parallel()

	m := RandIntDense(t, 16, 42, 100)
	for _, width := range []int{1, 4, 8, 16} {
		lanes, err := matrix.ToLanes(hide{m}, width)
		require.NoError(t, err)
		require.Len(t, lanes[0], 16/width)

		back, err := matrix.NewDenseFromLanes(lanes, width)
		require.NoError(t, err)
		CompareExact(t, m, back)
	}
}

// TestNewDenseFromLanes_Errors checks validation order and sentinels.
func TestNewDenseFromLanes_Errors(t *testing.T) {
	t.Parallel()

	good := func() [][][]float32 {
		return [][][]float32{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}, {{1, 1}, {1, 1}}, {{2, 2}, {2, 2}}}
	}

	tests := []struct {
		name  string
		lanes [][][]float32
		width int
		want  error
	}{
		{"empty", nil, 2, matrix.ErrInvalidSize},
		{"zero width", good(), 0, matrix.ErrInvalidLaneWidth},
		{"empty and zero width", nil, 0, matrix.ErrInvalidLaneWidth},
		{"width not dividing", good(), 3, matrix.ErrInvalidLaneWidth},
		{"short row", func() [][][]float32 { l := good(); l[1] = l[1][:1]; return l }(), 2, matrix.ErrDimensionMismatch},
		{"short lane", func() [][][]float32 { l := good(); l[2][1] = []float32{1}; return l }(), 2, matrix.ErrDimensionMismatch},
		{"nan", func() [][][]float32 { l := good(); l[3][0][1] = float32(math.NaN()); return l }(), 2, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFromLanes(tc.lanes, tc.width)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestToLanes_Errors covers nil input and bad widths.
func TestToLanes_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToLanes(nil, 4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ToLanes(MustDense(t, 6), 4)
	require.ErrorIs(t, err, matrix.ErrInvalidLaneWidth)
}
