// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/names checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    once more with their own operation name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateDense ensures the dense handle is non-nil and its backing buffer
// agrees with its dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateDense[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateDense", ErrNilMatrix)
	}
	if len(m.data) != m.nrow*m.ncol {
		return validatorErrorf("ValidateDense", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSparse ensures the sparse handle is non-nil.
// Structural invariants are established by NewSparseColumn and not
// re-checked here.
// Complexity: O(1).
func ValidateSparse(s *SparseColumn) error {
	if s == nil {
		return validatorErrorf("ValidateSparse", ErrNilMatrix)
	}

	return nil
}

// validateNames accepts nil (no names) or a slice of exactly n names.
func validateNames(names []string, n int) error {
	if names != nil && len(names) != n {
		return validatorErrorf("validateNames", ErrDimensionMismatch)
	}

	return nil
}
