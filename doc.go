// Package matkernels is a small set of numeric kernels that work directly
// on matrix-shaped buffers.
//
// What is inside?
//
//	• Column variance of a sparse compressed-column matrix, with optional
//	  removal of missing values, in O(ncol + nnz)
//	• Per-row sort of a dense int32/float64 matrix, ascending or descending,
//	  with an integer radix fast path for wide rows
//	• Per-row n-th order statistic with a broadcast or per-row n
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/    Dense, Vector, SparseColumn, NA markers, strided row buffers
//	colvars/   ColVars, ColMeans
//	roworder/  SortRows, NthRows, Sorter strategies and radix policy
//
// Every kernel is a pure, single-threaded function of its inputs: inputs are
// read-only, results are freshly allocated and scratch buffers live for one
// call only.
//
//	go get github.com/katalvlaran/matkernels
package matkernels
