// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented pins the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultThreshold, o.Threshold())
	require.Equal(t, 64, o.Threshold())
	require.Equal(t, matrix.DefaultZeroPadding, o.ZeroPadding())
	require.False(t, o.ZeroPadding())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 8, matrix.DefaultLaneWidth)
}

// TestNewOptions_LastWriterWins applies options in order.
func TestNewOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(
		matrix.WithThreshold(8),
		matrix.WithZeroPadding(),
		matrix.WithNoValidateNaNInf(),
		matrix.WithThreshold(16),
		matrix.WithNoZeroPadding(),
	)
	require.Equal(t, 16, o.Threshold())
	require.False(t, o.ZeroPadding())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
}

// TestNewOptions_NilSetter tolerates nil entries.
func TestNewOptions_NilSetter(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(nil, matrix.WithThreshold(2), nil)
	require.Equal(t, 2, o.Threshold())
}

// TestPanics_WithThreshold_Message checks the constructor guard.
func TestPanics_WithThreshold_Message(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: WithThreshold: threshold must be >= 1", func() {
		matrix.WithThreshold(0)
	})
	require.Panics(t, func() { matrix.WithThreshold(-5) })
	require.NotPanics(t, func() { matrix.WithThreshold(1) })
}
