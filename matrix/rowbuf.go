// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Move one row of a column-major buffer into a contiguous scratch slice
//     and back, for any Element type.
//
// Layout:
//   - Cell (i, k) lives at offset i + k*nrow. Walking a row therefore strides
//     by nrow; offsets are accumulated in int64 so nrow*ncol beyond the
//     32-bit range never overflows on any platform.
//
// AI-Hints:
//   - Allocate the scratch slice once per call and pass it to every row.

package matrix

// ExtractRow copies row i of the column-major buffer data (nrow×ncol) into
// out[:ncol]. The caller guarantees 0 ≤ i < nrow, len(out) ≥ ncol and
// len(data) ≥ nrow*ncol.
// Complexity: O(ncol).
func ExtractRow[T Element](data []T, nrow, ncol, i int, out []T) {
	var k int
	off, stride := int64(i), int64(nrow)
	for k = 0; k < ncol; k++ {
		out[k] = data[off]
		off += stride
	}
}

// InsertRow writes in[:ncol] into row i of the column-major buffer data.
// Preconditions mirror ExtractRow.
// Complexity: O(ncol).
func InsertRow[T Element](data []T, nrow, ncol, i int, in []T) {
	var k int
	off, stride := int64(i), int64(nrow)
	for k = 0; k < ncol; k++ {
		data[off] = in[k]
		off += stride
	}
}
