// SPDX-License-Identifier: MIT
// Package: roworder
//
// Purpose:
//   - Define the pluggable row-ordering strategy (Sorter) and the generic
//     comparison strategy.
//   - Resolve a RadixPolicy into a concrete strategy once per call.
//
// Determinism:
//   - Both strategies yield the same sequence of values for the same input
//     and direction. Neither is stable, which is unobservable for int32 and
//     for float64 apart from the sign of zero and NaN payloads.

package roworder

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/matkernels/matrix"
)

// Sorter orders one row buffer in place.
// desc=true orders from largest to smallest.
type Sorter[T matrix.Ordered] interface {
	Sort(row []T, desc bool)
}

// ComparisonSorter is the generic O(n log n) strategy for any Ordered type.
// Descending order swaps the comparator branches; there is no reversal pass.
// Missing values have no defined position.
type ComparisonSorter[T matrix.Ordered] struct{}

// Sort implements Sorter.
func (ComparisonSorter[T]) Sort(row []T, desc bool) {
	if desc {
		slices.SortFunc(row, compareDesc[T])
		return
	}
	slices.SortFunc(row, compareAsc[T])
}

// String names the strategy in logs.
func (ComparisonSorter[T]) String() string { return "comparison" }

func compareAsc[T matrix.Ordered](a, b T) int {
	if a == b {
		return 0
	}
	if a > b {
		return 1
	}

	return -1
}

func compareDesc[T matrix.Ordered](a, b T) int {
	if a == b {
		return 0
	}
	if a > b {
		return -1
	}

	return 1
}

// SelectSorter resolves policy into a strategy for rows of ncol cells of
// type T. It is evaluated once per call.
//
// Behavior highlights:
//   - RadixAuto: radix for int32 when ncol > RadixThreshold, else comparison.
//   - RadixOn:   radix for int32; for float64 the request is ignored, a
//     warning is logged and comparison sort is used.
//   - RadixOff:  comparison.
//
// Complexity: O(ncol) when the radix buffers are allocated, O(1) otherwise.
func SelectSorter[T matrix.Ordered](ncol int, policy RadixPolicy, logger *slog.Logger) Sorter[T] {
	kind := matrix.KindOf[T]()
	useRadix := false

	switch policy {
	case RadixOn:
		if kind == matrix.KindInt {
			useRadix = true
		} else if logger != nil {
			logger.Warn("radix sort requested on a non-integer matrix; using comparison sort",
				"kind", kind.String(), "ncol", ncol)
		}
	case RadixAuto:
		useRadix = kind == matrix.KindInt && ncol > RadixThreshold
	}

	var s Sorter[T] = ComparisonSorter[T]{}
	if useRadix {
		// T is int32 here, so the radix sorter satisfies Sorter[T].
		if rs, ok := any(NewRadixSorter(ncol)).(Sorter[T]); ok {
			s = rs
		}
	}
	if logger != nil {
		logger.Debug("row sort strategy selected",
			"strategy", s, "policy", policy.String(), "kind", kind.String(), "ncol", ncol)
	}

	return s
}
