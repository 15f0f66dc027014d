// SPDX-License-Identifier: MIT

package roworder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNth is returned when the selector has a length other than
	// 1 (broadcast) or the row count. No row is processed.
	ErrInvalidNth = errors.New("roworder: invalid 'nth'")

	// ErrNthOutOfRange is returned when a row's effective n is missing,
	// below 1 or above the column count. The whole call fails; no partial
	// result is returned.
	ErrNthOutOfRange = errors.New("roworder: 'nth' must contain non-NA values that are >= 1 and <= ncol(x)")

	// ErrNilSorter is returned when SortRowsWith is given a nil strategy.
	ErrNilSorter = errors.New("roworder: nil sorter")
)

// rowOrderErrorf wraps err with the operation tag.
func rowOrderErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
