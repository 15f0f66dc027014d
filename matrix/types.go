// SPDX-License-Identifier: MIT

// Package matrix: element kinds, type constraints and the opaque handle
// interface consumed by the type-erased kernel entry points.
// Errors and buffers live in dedicated files (errors.go, rowbuf.go).
package matrix

// Kind identifies the element type stored in a matrix or vector handle.
// The set mirrors the atomic vector types of the host runtime the kernels
// were written for; only a subset is storable in Dense (see Element).
type Kind int

const (
	KindLogical Kind = iota // boolean cells; never storable here
	KindInt                 // int32 cells
	KindReal                // float64 cells
	KindComplex             // complex128 cells
	KindString              // string cells; never storable here
	KindRaw                 // uint8 cells
)

// String returns the conventional lowercase type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindLogical:
		return "logical"
	case KindInt:
		return "integer"
	case KindReal:
		return "double"
	case KindComplex:
		return "complex"
	case KindString:
		return "character"
	case KindRaw:
		return "raw"
	}

	return "unknown"
}

// Element is the set of cell types a Dense or Vector may hold.
type Element interface {
	uint8 | int32 | float64 | complex128
}

// Ordered is the subset of Element the ordering kernels accept.
type Ordered interface {
	int32 | float64
}

// Array is the opaque handle accepted by type-erased entry points.
// *Dense[T] and *Vector[T] implement it.
type Array interface {
	// Kind reports the element kind.
	Kind() Kind

	// Len reports the total number of cells.
	Len() int
}

// ElemSize returns the storage size in bytes of one cell of kind k.
// Only raw, integer, double and complex have a fixed cell size; any other
// kind yields ErrUnsupportedType naming k.
// Complexity: O(1).
func ElemSize(k Kind) (int, error) {
	switch k {
	case KindRaw:
		return 1, nil
	case KindInt:
		return 4, nil
	case KindReal:
		return 8, nil
	case KindComplex:
		return 16, nil
	}

	return 0, UnsupportedTypeError(k)
}

// KindOf reports the Kind corresponding to the type parameter T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindRaw
	case int32:
		return KindInt
	case float64:
		return KindReal
	default: // complex128 is the only remaining member of Element
		return KindComplex
	}
}
