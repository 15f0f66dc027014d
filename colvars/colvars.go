// SPDX-License-Identifier: MIT
// Package: colvars
//
// Purpose:
//   - ColVars: unbiased sample variance of every column of a SparseColumn.
//   - ColMeans: mean of every column, sharing the same sum pass.
//
// Algorithm (per column j with count explicit entries):
//   - Sum pass over explicit entries; with NA removal, NA/NaN entries are
//     skipped and each one decrements sampleSize (which starts at nrow).
//   - mean = sum / sampleSize.
//   - sigma = mean² · (nrow − count) accounts for every implicit zero in
//     closed form; each explicit, non-skipped entry adds (v − mean)².
//   - variance = sigma / (sampleSize − 1).
//
// Determinism & Numerics:
//   - Fixed column → entry traversal.
//   - No guard for sampleSize ≤ 1: the raw IEEE division yields NaN or ±Inf.
//   - Without NA removal, NA/NaN propagate through the arithmetic.

package colvars

import (
	"fmt"

	"github.com/katalvlaran/matkernels/matrix"
)

const (
	opColVars  = "ColVars"
	opColMeans = "ColMeans"
)

// ColVars returns one variance per column of x (len == x.Cols()).
//
// Options: WithNARemove / WithNARemoval.
//
// Errors:
//   - matrix.ErrNilMatrix if x is nil. Degenerate columns never error.
//
// Complexity: O(ncol + nnz) time, O(ncol) space.
func ColVars(x *matrix.SparseColumn, opts ...Option) ([]float64, error) {
	// Stage 1 (Validate)
	if err := matrix.ValidateSparse(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opColVars, err)
	}

	// Stage 2 (Execute): one variance per compressed column run.
	o := gatherOptions(opts...)
	nrow, ncol := x.Rows(), x.Cols()
	out := make([]float64, ncol)
	var j int
	for j = 0; j < ncol; j++ {
		_, vals := x.Column(j)
		out[j] = colVar(vals, nrow, o.naRemove)
	}

	return out, nil
}

// ColMeans returns one mean per column of x, implicit zeros included.
// With NA removal the divisor is the number of non-missing cells.
//
// Errors:
//   - matrix.ErrNilMatrix if x is nil.
//
// Complexity: O(ncol + nnz).
func ColMeans(x *matrix.SparseColumn, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSparse(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opColMeans, err)
	}

	o := gatherOptions(opts...)
	nrow, ncol := x.Rows(), x.Cols()
	out := make([]float64, ncol)
	var j int
	for j = 0; j < ncol; j++ {
		_, vals := x.Column(j)
		sum, sampleSize := colSum(vals, nrow, o.naRemove)
		out[j] = sum / float64(sampleSize)
	}

	return out, nil
}

// colSum adds the explicit entries of one column. sampleSize starts at nrow
// and loses one for every skipped NA/NaN entry when naRemove is set.
func colSum(vals []float64, nrow int, naRemove bool) (sum float64, sampleSize int) {
	sampleSize = nrow
	for _, v := range vals {
		if naRemove && matrix.IsNAOrNaN(v) {
			sampleSize--
			continue
		}
		sum += v
	}

	return sum, sampleSize
}

// colVar computes the sample variance of one column from its explicit
// entries; the nrow-len(vals) implicit zeros enter in closed form.
func colVar(vals []float64, nrow int, naRemove bool) float64 {
	sum, sampleSize := colSum(vals, nrow, naRemove)
	mean := sum / float64(sampleSize)

	// Every implicit zero contributes (0 - mean)².
	sigma := mean * mean * float64(nrow-len(vals))
	var delta float64
	for _, v := range vals {
		if naRemove && matrix.IsNAOrNaN(v) {
			continue
		}
		delta = v - mean
		sigma += delta * delta
	}

	return sigma / (float64(sampleSize) - 1.0)
}
