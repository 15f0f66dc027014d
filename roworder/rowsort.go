// SPDX-License-Identifier: MIT
// Package: roworder
//
// Purpose:
//   - SortRows: sort every row of a Dense independently into a fresh matrix.
//   - SortRowsWith: the same loop with a caller-injected Sorter.
//   - RowSort: type-erased entry point over matrix.Array handles.
//
// Contract:
//   - The input is never mutated. The output has the input's shape, kind and
//     row names; column names are dropped because per-row reordering breaks
//     column identity.
//   - One scratch row is allocated per call and reused for every row.

package roworder

import (
	"github.com/katalvlaran/matkernels/matrix"
)

const (
	opSortRows     = "SortRows"
	opSortRowsWith = "SortRowsWith"
	opRowSort      = "RowSort"
)

// SortRows returns a copy of x with each row sorted.
// Options: WithDescending / WithAscending, WithRadix, WithLogger.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch from validation.
//
// Complexity: O(nrow · ncol log ncol) with comparison sort,
// O(nrow · (ncol + 2^16)) with radix sort.
func SortRows[T matrix.Ordered](x *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	// Stage 1 (Validate)
	if err := matrix.ValidateDense(x); err != nil {
		return nil, rowOrderErrorf(opSortRows, err)
	}

	// Stage 2 (Prepare): resolve options and strategy once per call.
	o := gatherOptions(opts...)
	s := SelectSorter[T](x.Cols(), o.radix, o.logger.With("op", opSortRows))

	// Stage 3 (Execute)
	out, err := sortRows(x, s, o.descending)
	if err != nil {
		return nil, rowOrderErrorf(opSortRows, err)
	}

	return out, nil
}

// SortRowsWith is SortRows with an explicit strategy, bypassing policy
// selection. s must be non-nil.
func SortRowsWith[T matrix.Ordered](x *matrix.Dense[T], s Sorter[T], desc bool) (*matrix.Dense[T], error) {
	if err := matrix.ValidateDense(x); err != nil {
		return nil, rowOrderErrorf(opSortRowsWith, err)
	}
	if s == nil {
		return nil, rowOrderErrorf(opSortRowsWith, ErrNilSorter)
	}

	out, err := sortRows(x, s, desc)
	if err != nil {
		return nil, rowOrderErrorf(opSortRowsWith, err)
	}

	return out, nil
}

// sortRows runs extract → sort → insert for every row of x.
func sortRows[T matrix.Ordered](x *matrix.Dense[T], s Sorter[T], desc bool) (*matrix.Dense[T], error) {
	nrow, ncol := x.Dims()
	out, err := matrix.NewDense[T](nrow, ncol)
	if err != nil {
		return nil, err
	}
	if err = out.SetRowNames(x.RowNames()); err != nil {
		return nil, err
	}

	src, dst := x.Data(), out.Data()
	scratch := make([]T, ncol) // reused for every row
	var i int
	for i = 0; i < nrow; i++ {
		sortRowInto(dst, src, nrow, ncol, i, scratch, s, desc)
	}

	return out, nil
}

// sortRowInto orders row i of src through scratch and stores it as row i
// of dst.
func sortRowInto[T matrix.Ordered](dst, src []T, nrow, ncol, i int, scratch []T, s Sorter[T], desc bool) {
	matrix.ExtractRow(src, nrow, ncol, i, scratch)
	s.Sort(scratch, desc)
	matrix.InsertRow(dst, nrow, ncol, i, scratch)
}

// RowSort is the type-erased form of SortRows. x must be a
// *matrix.Dense[int32] or *matrix.Dense[float64]; the result has the same
// concrete type.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil handle.
//   - matrix.ErrUnsupportedType naming the kind for any other element type.
func RowSort(x matrix.Array, opts ...Option) (matrix.Array, error) {
	switch m := x.(type) {
	case nil:
		return nil, rowOrderErrorf(opRowSort, matrix.ErrNilMatrix)
	case *matrix.Dense[int32]:
		out, err := SortRows(m, opts...)
		if err != nil {
			return nil, err
		}
		return out, nil
	case *matrix.Dense[float64]:
		out, err := SortRows(m, opts...)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	return nil, rowOrderErrorf(opRowSort, matrix.UnsupportedTypeError(x.Kind()))
}
