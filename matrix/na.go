// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Encode the two "missing value" sentinels used by the host runtime:
//     NAInt for int32 cells and a payload-tagged NaN for float64 cells.
//   - Let kernels distinguish "missing" from "not a number" where it matters
//     and treat them alike where it does not (NA removal).

package matrix

import "math"

// NAInt is the missing-value marker for int32 cells (the most negative int32).
const NAInt int32 = math.MinInt32

// naPayload is the low word carried by the missing-value NaN.
const naPayload = 1954

// naBits is the IEEE-754 bit pattern of the float64 missing value:
// a quiet-bit-clear NaN whose low 32 bits equal naPayload.
const naBits uint64 = 0x7FF00000_00000000 | naPayload

// NA returns the float64 missing value. It is a NaN, so arithmetic
// propagates it like any other NaN.
func NA() float64 {
	return math.Float64frombits(naBits)
}

// IsNA reports whether v is the float64 missing value (and not an
// ordinary NaN).
func IsNA(v float64) bool {
	return math.IsNaN(v) && uint32(math.Float64bits(v)) == naPayload
}

// IsNAOrNaN reports whether v is missing or not-a-number.
// Every missing value is a NaN, so this is math.IsNaN; the name documents
// intent at call sites performing NA removal.
func IsNAOrNaN(v float64) bool {
	return math.IsNaN(v)
}
