// Package matrix holds the buffer-level data model shared by the kernel
// packages.
//
// The matrix package provides:
//
//   - Dense[T]: a column-major matrix of int32, float64, uint8 (raw) or
//     complex128 cells with optional row and column names.
//   - Vector[T]: a named one-dimensional result.
//   - SparseColumn: an immutable compressed-column float64 matrix whose
//     unstored cells are implicit zeros.
//   - ExtractRow / InsertRow: strided row copies between a column-major
//     buffer and a contiguous scratch slice.
//   - NA helpers for the int32 and float64 missing-value markers.
//
// Kernels built on top of this package live in colvars (per-column variance
// of a SparseColumn) and roworder (per-row sort and order statistics of a
// Dense). All of them treat their inputs as read-only and return freshly
// allocated results.
package matrix
