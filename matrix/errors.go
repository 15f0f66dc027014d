// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the kernel packages built on top of it (colvars, roworder).
// Kernels MUST return these sentinels (optionally wrapped with %w) and tests
// MUST check them via errors.Is. No kernel panics on user-triggered input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it is easy to grep.
// Call sites add the operation tag with matrixErrorf(op, ErrX); callers match
// with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a compressed-column pointer array that is not a valid
	// sequence of run boundaries).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a buffer, names vector or index
	// array does not match the declared dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix handle was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedType is returned when the element kind of a handle is not
	// accepted by the operation. The wrapped message names the kind.
	ErrUnsupportedType = errors.New("matrix: type not supported")
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// UnsupportedTypeError returns ErrUnsupportedType wrapped with a message that
// names the offending kind, e.g. "complex type not supported".
func UnsupportedTypeError(k Kind) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, k)
}
