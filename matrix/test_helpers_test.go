// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the data-model tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matkernels/matrix"
	"github.com/stretchr/testify/require"
)

// MustDenseFrom builds an r×c Dense from column-major data or fails the test.
func MustDenseFrom[T matrix.Element](t testing.TB, r, c int, data []T) *matrix.Dense[T] {
	t.Helper()

	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()

	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSparse builds a SparseColumn or fails the test.
func MustSparse(t testing.TB, nrow, ncol int, colPtr, rowIdx []int, values []float64) *matrix.SparseColumn {
	t.Helper()

	s, err := matrix.NewSparseColumn(nrow, ncol, colPtr, rowIdx, values)
	require.NoError(t, err)

	return s
}
