// SPDX-License-Identifier: MIT
package roworder_test

import (
	"testing"

	"github.com/katalvlaran/matkernels/matrix"
	"github.com/katalvlaran/matkernels/roworder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthRows_WorkedExample(t *testing.T) {
	t.Parallel()

	x := fromRows(t, [][]int32{{3, 1}, {2, 4}, {5, 0}})

	got, err := roworder.NthRows(x, []int32{2})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 4, 5}, got.Values)
	assert.Nil(t, got.Names)
}

func TestNthRows_MinMax(t *testing.T) {
	t.Parallel()

	x := randFloatDense(t, 8, 13, 99)
	rows := toRows(t, x)

	lo, err := roworder.NthRows(x, []int32{1})
	require.NoError(t, err)
	hi, err := roworder.NthRows(x, []int32{13})
	require.NoError(t, err)

	for i, r := range rows {
		assert.Equal(t, minOf(r), lo.Values[i], "row %d", i)
		assert.Equal(t, maxOf(r), hi.Values[i], "row %d", i)
	}
}

func TestNthRows_ConsistentWithSortRows(t *testing.T) {
	t.Parallel()

	x := randInt32Dense(t, 6, 11, 5, true)
	sorted, err := roworder.SortRows(x)
	require.NoError(t, err)

	for n := int32(1); n <= 11; n++ {
		got, err := roworder.NthRows(x, []int32{n})
		require.NoError(t, err)
		for i := 0; i < x.Rows(); i++ {
			want, err := sorted.At(i, int(n-1))
			require.NoError(t, err)
			assert.Equal(t, want, got.Values[i], "row %d n=%d", i, n)
		}
	}

	// One selector per row.
	perRow := []int32{1, 11, 6, 2, 3, 10}
	got, err := roworder.NthRows(x, perRow)
	require.NoError(t, err)
	for i, n := range perRow {
		want, err := sorted.At(i, int(n-1))
		require.NoError(t, err)
		assert.Equal(t, want, got.Values[i], "row %d", i)
	}
}

func TestNthRows_Names(t *testing.T) {
	t.Parallel()

	x := fromRows(t, [][]float64{{1, 2}, {4, 3}})
	require.NoError(t, x.SetRowNames([]string{"first", "second"}))

	got, err := roworder.NthRows(x, []int32{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, got.Values)
	assert.Equal(t, []string{"first", "second"}, got.Names)
}

func TestNthRows_Errors(t *testing.T) {
	t.Parallel()

	x := randInt32Dense(t, 3, 4, 11, true)

	tests := []struct {
		name    string
		nth     []int32
		wantErr error
	}{
		{"zero in first row", []int32{0, 1, 1}, roworder.ErrNthOutOfRange},
		{"wrong length", []int32{1, 1}, roworder.ErrInvalidNth},
		{"empty selector", nil, roworder.ErrInvalidNth},
		{"missing", []int32{1, matrix.NAInt, 1}, roworder.ErrNthOutOfRange},
		{"above ncol", []int32{5}, roworder.ErrNthOutOfRange},
		{"negative in last row", []int32{4, 4, -2}, roworder.ErrNthOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := roworder.NthRows(x, tc.nth)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, got, "no partial result")
		})
	}
}

func TestRowNthLargest_TypeErased(t *testing.T) {
	t.Parallel()

	x := fromRows(t, [][]float64{{3, 1, 2}})
	got, err := roworder.RowNthLargest(x, []int32{3})
	require.NoError(t, err)
	v, ok := got.(*matrix.Vector[float64])
	require.True(t, ok)
	assert.Equal(t, []float64{3}, v.Values)

	i := fromRows(t, [][]int32{{3, 1, 2}, {6, 5, 4}})
	got, err = roworder.RowNthLargest(i, []int32{1})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4}, got.(*matrix.Vector[int32]).Values)

	c, err := matrix.NewDense[complex128](2, 2)
	require.NoError(t, err)
	_, err = roworder.RowNthLargest(c, []int32{1})
	require.ErrorIs(t, err, matrix.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "complex")

	_, err = roworder.RowNthLargest(nil, []int32{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = roworder.RowNthLargest(i, []int32{1, 1, 1})
	require.ErrorIs(t, err, roworder.ErrInvalidNth)
}

func minOf(r []float64) float64 {
	m := r[0]
	for _, v := range r[1:] {
		m = min(m, v)
	}
	return m
}

func maxOf(r []float64) float64 {
	m := r[0]
	for _, v := range r[1:] {
		m = max(m, v)
	}
	return m
}
