// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matkernels/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElemSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind matrix.Kind
		size int
	}{
		{matrix.KindRaw, 1},
		{matrix.KindInt, 4},
		{matrix.KindReal, 8},
		{matrix.KindComplex, 16},
	}
	for _, tc := range tests {
		got, err := matrix.ElemSize(tc.kind)
		require.NoError(t, err, tc.kind.String())
		assert.Equal(t, tc.size, got, tc.kind.String())
	}

	_, err := matrix.ElemSize(matrix.KindString)
	require.ErrorIs(t, err, matrix.ErrUnsupportedType)
	require.Contains(t, err.Error(), "character")

	_, err = matrix.ElemSize(matrix.KindLogical)
	require.ErrorIs(t, err, matrix.ErrUnsupportedType)
	require.Contains(t, err.Error(), "logical")
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, matrix.KindRaw, matrix.KindOf[uint8]())
	assert.Equal(t, matrix.KindInt, matrix.KindOf[int32]())
	assert.Equal(t, matrix.KindReal, matrix.KindOf[float64]())
	assert.Equal(t, matrix.KindComplex, matrix.KindOf[complex128]())
	assert.Equal(t, "unknown", matrix.Kind(42).String())
}

func TestNA(t *testing.T) {
	t.Parallel()

	na := matrix.NA()
	require.True(t, math.IsNaN(na))
	require.True(t, matrix.IsNA(na))
	require.False(t, matrix.IsNA(math.NaN()))
	require.False(t, matrix.IsNA(1954))

	require.True(t, matrix.IsNAOrNaN(na))
	require.True(t, matrix.IsNAOrNaN(math.NaN()))
	require.False(t, matrix.IsNAOrNaN(math.Inf(1)))

	require.True(t, math.IsNaN(na+1), "NA propagates through arithmetic")
	require.Equal(t, int32(math.MinInt32), matrix.NAInt)
}
