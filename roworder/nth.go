// SPDX-License-Identifier: MIT
// Package: roworder
//
// Purpose:
//   - NthRows: the n-th order statistic of every row of a Dense.
//   - RowNthLargest: type-erased entry point over matrix.Array handles.
//
// Semantics:
//   - Each row is sorted ascending with the comparison strategy and the
//     result is sorted[n-1], so n=1 yields the row minimum and n=ncol the
//     row maximum (see DESIGN.md for the naming of RowNthLargest).
//   - nth holds one value broadcast to every row, or one value per row.

package roworder

import (
	"fmt"

	"github.com/katalvlaran/matkernels/matrix"
)

const (
	opNthRows       = "NthRows"
	opRowNthLargest = "RowNthLargest"
)

// NthRows returns, for every row i of x, the nth[i]-th smallest value
// (nth[0] for every row when len(nth) == 1). Element names of the result
// are the row names of x.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch from validation.
//   - ErrInvalidNth when len(nth) is neither 1 nor Rows(); checked before
//     any row is processed.
//   - ErrNthOutOfRange when a row's n is matrix.NAInt, < 1 or > Cols();
//     checked row by row, and the partial result is discarded.
//
// Complexity: O(nrow · ncol log ncol).
func NthRows[T matrix.Ordered](x *matrix.Dense[T], nth []int32) (*matrix.Vector[T], error) {
	// Stage 1 (Validate): handle and selector length.
	if err := matrix.ValidateDense(x); err != nil {
		return nil, rowOrderErrorf(opNthRows, err)
	}
	nrow, ncol := x.Dims()
	if len(nth) != 1 && len(nth) != nrow {
		return nil, rowOrderErrorf(opNthRows, ErrInvalidNth)
	}

	// Stage 2 (Prepare): result and a single scratch row.
	out, err := matrix.NewVector[T](nrow)
	if err != nil {
		return nil, rowOrderErrorf(opNthRows, err)
	}
	scratch := make([]T, ncol)
	var sorter ComparisonSorter[T]
	src := x.Data()

	// Stage 3 (Execute): extract, sort ascending, pick.
	var i int
	var n int32
	for i = 0; i < nrow; i++ {
		matrix.ExtractRow(src, nrow, ncol, i, scratch)
		sorter.Sort(scratch, false)
		n = nth[0]
		if len(nth) != 1 {
			n = nth[i]
		}
		if n == matrix.NAInt || n < 1 || int(n) > ncol {
			return nil, fmt.Errorf("%s: row %d: %w", opNthRows, i, ErrNthOutOfRange)
		}
		out.Values[i] = scratch[n-1]
	}

	// Stage 4 (Finalize): row names become element names.
	if err = out.SetNames(x.RowNames()); err != nil {
		return nil, rowOrderErrorf(opNthRows, err)
	}

	return out, nil
}

// RowNthLargest is the type-erased form of NthRows. x must be a
// *matrix.Dense[int32] or *matrix.Dense[float64]; the result is a
// *matrix.Vector of the same element type.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil handle.
//   - matrix.ErrUnsupportedType naming the kind for any other element type.
//   - Everything NthRows returns.
func RowNthLargest(x matrix.Array, nth []int32) (matrix.Array, error) {
	switch m := x.(type) {
	case nil:
		return nil, rowOrderErrorf(opRowNthLargest, matrix.ErrNilMatrix)
	case *matrix.Dense[int32]:
		out, err := NthRows(m, nth)
		if err != nil {
			return nil, err
		}
		return out, nil
	case *matrix.Dense[float64]:
		out, err := NthRows(m, nth)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, rowOrderErrorf(opRowNthLargest, matrix.UnsupportedTypeError(x.Kind()))
}
