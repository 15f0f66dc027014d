// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - SparseColumn: a read-only compressed-column (CSC) float64 matrix.
//     Column j stores its explicit entries in values[colPtr[j]:colPtr[j+1]]
//     with matching row positions in rowIdx; every other cell of the column
//     is an implicit exact zero.
//   - Conversions to and from Dense[float64].
//
// Invariants (enforced by NewSparseColumn):
//   - len(colPtr) == ncol+1, colPtr[0] == 0, colPtr non-decreasing.
//   - colPtr[ncol] == len(values) == len(rowIdx).
//   - Within a column, row positions are strictly increasing and in [0, nrow).
//
// AI-Hints:
//   - Kernels read values/colPtr directly; they never mutate them.

package matrix

const (
	opNewSparseColumn = "NewSparseColumn"
	opSparseFromDense = "SparseFromDense"
)

// SparseColumn is an immutable nrow×ncol compressed-column matrix.
type SparseColumn struct {
	nrow, ncol int
	colPtr     []int     // run boundaries, len ncol+1
	rowIdx     []int     // row of each stored value, len nnz
	values     []float64 // stored values, len nnz
}

// NewSparseColumn validates and wraps a compressed-column representation.
// The slices are copied; the caller keeps ownership of its arguments.
//
// Errors:
//   - ErrBadShape for negative dims or a malformed colPtr.
//   - ErrDimensionMismatch when slice lengths disagree.
//   - ErrOutOfRange for a row index outside [0, nrow) or out of order.
//
// Complexity: O(ncol + nnz).
func NewSparseColumn(nrow, ncol int, colPtr, rowIdx []int, values []float64) (*SparseColumn, error) {
	// Stage 1 (Validate): shape and boundary array.
	if nrow < 0 || ncol < 0 {
		return nil, matrixErrorf(opNewSparseColumn, ErrBadShape)
	}
	if len(colPtr) != ncol+1 {
		return nil, matrixErrorf(opNewSparseColumn, ErrDimensionMismatch)
	}
	if colPtr[0] != 0 {
		return nil, matrixErrorf(opNewSparseColumn, ErrBadShape)
	}
	if colPtr[ncol] != len(values) || len(rowIdx) != len(values) {
		return nil, matrixErrorf(opNewSparseColumn, ErrDimensionMismatch)
	}

	// Stage 2 (Validate): per-column runs.
	var j, p int
	for j = 0; j < ncol; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, matrixErrorf(opNewSparseColumn, ErrBadShape)
		}
		if colPtr[j+1]-colPtr[j] > nrow {
			return nil, matrixErrorf(opNewSparseColumn, ErrBadShape)
		}
		for p = colPtr[j]; p < colPtr[j+1]; p++ {
			if rowIdx[p] < 0 || rowIdx[p] >= nrow {
				return nil, matrixErrorf(opNewSparseColumn, ErrOutOfRange)
			}
			if p > colPtr[j] && rowIdx[p] <= rowIdx[p-1] {
				return nil, matrixErrorf(opNewSparseColumn, ErrOutOfRange)
			}
		}
	}

	// Stage 3 (Finalize): take private copies.
	return &SparseColumn{
		nrow:   nrow,
		ncol:   ncol,
		colPtr: append([]int(nil), colPtr...),
		rowIdx: append([]int(nil), rowIdx...),
		values: append([]float64(nil), values...),
	}, nil
}

// Rows returns the number of rows.
func (s *SparseColumn) Rows() int { return s.nrow }

// Cols returns the number of columns.
func (s *SparseColumn) Cols() int { return s.ncol }

// NNZ returns the number of explicitly stored entries.
func (s *SparseColumn) NNZ() int { return len(s.values) }

// ColPtr returns the run-boundary array (read-only view).
func (s *SparseColumn) ColPtr() []int { return s.colPtr }

// Values returns the stored values (read-only view).
func (s *SparseColumn) Values() []float64 { return s.values }

// Column returns read-only views of the row positions and values stored in
// column j. The caller guarantees 0 ≤ j < Cols().
func (s *SparseColumn) Column(j int) ([]int, []float64) {
	lo, hi := s.colPtr[j], s.colPtr[j+1]

	return s.rowIdx[lo:hi], s.values[lo:hi]
}

// At returns cell (i, j), which is 0 for implicit entries.
// Complexity: O(log nnz(j)).
func (s *SparseColumn) At(i, j int) (float64, error) {
	if i < 0 || i >= s.nrow || j < 0 || j >= s.ncol {
		return 0, matrixErrorf("SparseColumn.At", ErrOutOfRange)
	}
	rows, vals := s.Column(j)
	lo, hi := 0, len(rows)
	for lo < hi { // binary search over strictly increasing rows
		mid := int(uint(lo+hi) >> 1)
		if rows[mid] < i {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(rows) && rows[lo] == i {
		return vals[lo], nil
	}

	return 0, nil
}

// ToDense materializes the matrix, filling implicit cells with 0.
// Complexity: O(nrow*ncol + nnz).
func (s *SparseColumn) ToDense() *Dense[float64] {
	d := &Dense[float64]{nrow: s.nrow, ncol: s.ncol, data: make([]float64, s.nrow*s.ncol)}
	var j, p int
	for j = 0; j < s.ncol; j++ {
		base := j * s.nrow // column j starts here in column-major order
		for p = s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			d.data[base+s.rowIdx[p]] = s.values[p]
		}
	}

	return d
}

// SparseFromDense compresses d, storing every cell that is not an exact
// zero (NaN and NA are stored). Names are not carried over.
// Complexity: O(nrow*ncol).
func SparseFromDense(d *Dense[float64]) (*SparseColumn, error) {
	if d == nil {
		return nil, matrixErrorf(opSparseFromDense, ErrNilMatrix)
	}

	s := &SparseColumn{nrow: d.nrow, ncol: d.ncol, colPtr: make([]int, d.ncol+1)}
	var i, j int
	var v float64
	for j = 0; j < d.ncol; j++ {
		for i = 0; i < d.nrow; i++ {
			v = d.data[i+j*d.nrow]
			if v == 0 { // NaN != 0, so missing cells stay explicit
				continue
			}
			s.rowIdx = append(s.rowIdx, i)
			s.values = append(s.values, v)
		}
		s.colPtr[j+1] = len(s.values)
	}

	return s, nil
}
