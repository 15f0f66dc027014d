// SPDX-License-Identifier: MIT

package matrix

// Vector is a one-dimensional result handle: one value per matrix row (or
// column) with optional element names.
type Vector[T Element] struct {
	Values []T      // cell values
	Names  []string // nil or len == len(Values)
}

// NewVector allocates a zero-filled Vector of length n.
func NewVector[T Element](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, matrixErrorf("NewVector", ErrBadShape)
	}

	return &Vector[T]{Values: make([]T, n)}, nil
}

// Kind reports the element kind of T.
func (v *Vector[T]) Kind() Kind { return KindOf[T]() }

// Len returns the number of cells.
func (v *Vector[T]) Len() int { return len(v.Values) }

// SetNames attaches a copy of names as element names; nil clears them.
func (v *Vector[T]) SetNames(names []string) error {
	if err := validateNames(names, len(v.Values)); err != nil {
		return matrixErrorf("Vector.SetNames", err)
	}
	v.Names = cloneNames(names)

	return nil
}
