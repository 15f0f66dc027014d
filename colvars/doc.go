// Package colvars computes per-column statistics of a sparse
// compressed-column matrix without materializing it.
//
// Only the explicit entries of each column are visited; the implicit zeros
// are accounted for in closed form, so the cost is O(ncol + nnz) however
// tall the matrix is.
//
// Usage:
//
//	import "github.com/katalvlaran/matkernels/colvars"
//
//	vars, err := colvars.ColVars(x, colvars.WithNARemove())
//
// The variance is the unbiased sample variance (divisor n−1). Columns with
// fewer than two usable cells follow plain IEEE division: 0/0 is NaN and a
// non-zero numerator over zero is ±Inf.
package colvars
