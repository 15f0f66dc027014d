// Package roworder sorts the rows of a dense matrix and extracts per-row
// order statistics.
//
// What it does:
//
//	Every row of a column-major matrix is copied into a scratch buffer,
//	ordered by a pluggable Sorter, and either written back into a fresh
//	matrix (SortRows) or reduced to a single selected value (NthRows).
//
// Key features:
//   - int32 and float64 cells through one generic implementation
//   - ascending or descending order without a reversal pass
//   - integer radix fast path, picked automatically for rows wider than
//     RadixThreshold or forced on/off with WithRadix
//   - row names carried to the result
//
// Usage:
//
//	import "github.com/katalvlaran/matkernels/roworder"
//
//	sorted, err := roworder.SortRows(x, roworder.WithDescending())
//	third, err := roworder.NthRows(x, []int32{3})
//
// Missing values (matrix.NAInt, NaN) are sorted like ordinary values; their
// position in the output is not defined.
//
// Performance:
//
//   - Time:   O(nrow · ncol log ncol) comparison, O(nrow · ncol) radix
//   - Memory: one scratch row (+ radix buffers) per call
package roworder
