// SPDX-License-Identifier: MIT

// Package matrix: Dense is a column-major matrix of Element values with
// optional row and column names. Cells are stored in a flat slice so that
// kernels can walk rows with a fixed stride (see rowbuf.go).
package matrix

import (
	"fmt"
	"strings"
)

// Operation tags used when wrapping sentinels.
const (
	opNewDense     = "NewDense"
	opNewDenseFrom = "NewDenseFrom"
	opSetRowNames  = "Dense.SetRowNames"
	opSetColNames  = "Dense.SetColNames"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a column-major nrow×ncol matrix.
// data holds nrow*ncol cells; cell (i, j) is data[i+j*nrow].
type Dense[T Element] struct {
	nrow, ncol int      // number of rows and columns
	data       []T      // flat column-major storage, len == nrow*ncol
	rowNames   []string // nil or len == nrow
	colNames   []string // nil or len == ncol
}

// NewDense creates a zero-filled nrow×ncol Dense matrix.
// Stage 1 (Validate): reject negative dimensions (zero is a legal empty shape).
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(nrow*ncol) time and memory.
func NewDense[T Element](nrow, ncol int) (*Dense[T], error) {
	// Validate dimensions
	if nrow < 0 || ncol < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	// Allocate flat slice
	return &Dense[T]{nrow: nrow, ncol: ncol, data: make([]T, nrow*ncol)}, nil
}

// NewDenseFrom creates an nrow×ncol Dense matrix holding a copy of data,
// which must be in column-major order.
// Returns ErrBadShape for negative dims and ErrDimensionMismatch when
// len(data) != nrow*ncol.
// Complexity: O(nrow*ncol).
func NewDenseFrom[T Element](nrow, ncol int, data []T) (*Dense[T], error) {
	if nrow < 0 || ncol < 0 {
		return nil, matrixErrorf(opNewDenseFrom, ErrBadShape)
	}
	if len(data) != nrow*ncol {
		return nil, matrixErrorf(opNewDenseFrom, ErrDimensionMismatch)
	}

	buf := make([]T, len(data))
	copy(buf, data) // caller keeps ownership of data

	return &Dense[T]{nrow: nrow, ncol: ncol, data: buf}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.nrow }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.ncol }

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (int, int) { return m.nrow, m.ncol }

// Kind reports the element kind of T.
func (m *Dense[T]) Kind() Kind { return KindOf[T]() }

// Len returns the total number of cells.
func (m *Dense[T]) Len() int { return len(m.data) }

// Data returns the column-major backing slice. Callers must treat it as
// read-only; it is exposed so kernels can stride over it without copies.
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.nrow || col < 0 || col >= m.ncol {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Column-major offset
	return row + col*m.nrow, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row copies row i into out[:Cols()]. It is the bounds-checked counterpart
// of ExtractRow.
// Complexity: O(ncol).
func (m *Dense[T]) Row(i int, out []T) error {
	if i < 0 || i >= m.nrow {
		return denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	if len(out) < m.ncol {
		return denseErrorf("Row", i, 0, ErrDimensionMismatch)
	}
	ExtractRow(m.data, m.nrow, m.ncol, i, out)

	return nil
}

// SetRow overwrites row i with in[:Cols()].
// Complexity: O(ncol).
func (m *Dense[T]) SetRow(i int, in []T) error {
	if i < 0 || i >= m.nrow {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(in) < m.ncol {
		return denseErrorf("SetRow", i, 0, ErrDimensionMismatch)
	}
	InsertRow(m.data, m.nrow, m.ncol, i, in)

	return nil
}

// RowNames returns the row names, or nil when the matrix has none.
func (m *Dense[T]) RowNames() []string { return m.rowNames }

// ColNames returns the column names, or nil when the matrix has none.
func (m *Dense[T]) ColNames() []string { return m.colNames }

// SetRowNames attaches a copy of names as row names. A nil slice clears
// them; otherwise len(names) must equal Rows().
func (m *Dense[T]) SetRowNames(names []string) error {
	if err := validateNames(names, m.nrow); err != nil {
		return matrixErrorf(opSetRowNames, err)
	}
	m.rowNames = cloneNames(names)

	return nil
}

// SetColNames attaches a copy of names as column names. A nil slice clears
// them; otherwise len(names) must equal Cols().
func (m *Dense[T]) SetColNames(names []string) error {
	if err := validateNames(names, m.ncol); err != nil {
		return matrixErrorf(opSetColNames, err)
	}
	m.colNames = cloneNames(names)

	return nil
}

// Clone returns a deep copy of the matrix, names included.
// Complexity: O(nrow*ncol).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{
		nrow:     m.nrow,
		ncol:     m.ncol,
		data:     buf,
		rowNames: cloneNames(m.rowNames),
		colNames: cloneNames(m.colNames),
	}
}

// String implements fmt.Stringer for easy debugging: one bracketed line
// per row.
// Complexity: O(nrow*ncol).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.nrow; i++ {
		if m.rowNames != nil {
			sb.WriteString(m.rowNames[i])
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j = 0; j < m.ncol; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i+j*m.nrow])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// cloneNames copies a names slice, preserving nil.
func cloneNames(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)

	return out
}
