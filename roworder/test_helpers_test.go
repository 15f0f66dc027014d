// SPDX-License-Identifier: MIT
// Package roworder_test contains test helpers
//
// Purpose:
//   - Build small matrices from row-major literals (easier to read in tests)
//     and generate deterministic random fixtures.

package roworder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matkernels/matrix"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense from row-major literals.
func fromRows[T matrix.Ordered](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()

	nrow := len(rows)
	ncol := 0
	if nrow > 0 {
		ncol = len(rows[0])
	}
	m, err := matrix.NewDense[T](nrow, ncol)
	require.NoError(t, err)
	for i, r := range rows {
		require.Len(t, r, ncol)
		require.NoError(t, m.SetRow(i, r))
	}

	return m
}

// toRows reads a Dense back as row-major literals.
func toRows[T matrix.Ordered](t testing.TB, m *matrix.Dense[T]) [][]T {
	t.Helper()

	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		require.NoError(t, m.Row(i, out[i]))
	}

	return out
}

// randInt32Dense fills an r×c int32 matrix; small=true keeps values in a
// narrow range so that duplicates are frequent.
func randInt32Dense(t testing.TB, r, c int, seed int64, small bool) *matrix.Dense[int32] {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	data := make([]int32, r*c)
	for i := range data {
		if small {
			data[i] = int32(rng.Intn(21) - 10)
			continue
		}
		data[i] = int32(rng.Uint32())
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// randFloatDense fills an r×c float64 matrix with normal deviates.
func randFloatDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64() * 100
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}
