// SPDX-License-Identifier: MIT
// Package: roworder
//
// Purpose:
//   - Integer fast path: order a row of int32 values by sorting an index
//     array with two LSD counting-sort passes over 16-bit digits, then
//     gather the values through the sorted indices.
//
// Keys:
//   - Each value is mapped to uint32(v) ^ 0x80000000 so that unsigned order
//     equals signed order. Pass 0 buckets the low 16 bits, pass 1 the high
//     16 bits. For descending order every digit is complemented, which turns
//     the ascending LSD sort into a descending one without a reversal pass.
//
// Memory:
//   - RadixBuffers are sized to the row length and reused across rows of a
//     single call; they are never shared between calls.

package roworder

const (
	radixDigitBits = 16
	radixBuckets   = 1 << radixDigitBits
	radixSignFlip  = uint32(1) << 31
)

// RadixBuffers is the transient scratch state of the radix strategy.
type RadixBuffers struct {
	keys  []uint16 // current digit of every row position
	order []int    // row positions in sorted order (after the last pass)
	swap  []int    // ping-pong partner of order
	vals  []int32  // gathered values before copying back into the row
	count []int    // bucket histogram / running offsets, len radixBuckets
}

// NewRadixBuffers allocates buffers for rows of up to n cells.
func NewRadixBuffers(n int) *RadixBuffers {
	return &RadixBuffers{
		keys:  make([]uint16, n),
		order: make([]int, n),
		swap:  make([]int, n),
		vals:  make([]int32, n),
		count: make([]int, radixBuckets),
	}
}

// grow makes room for rows of n cells.
func (b *RadixBuffers) grow(n int) {
	if len(b.keys) >= n {
		return
	}
	b.keys = make([]uint16, n)
	b.order = make([]int, n)
	b.swap = make([]int, n)
	b.vals = make([]int32, n)
}

// RadixSorter is the int32-only index-based radix strategy.
// It produces exactly the output of ComparisonSorter[int32].
type RadixSorter struct {
	buf *RadixBuffers
}

// NewRadixSorter returns a radix strategy with buffers sized for rows of n
// cells. Longer rows grow the buffers on demand.
func NewRadixSorter(n int) *RadixSorter {
	return &RadixSorter{buf: NewRadixBuffers(n)}
}

// String names the strategy in logs.
func (*RadixSorter) String() string { return "radix" }

// Sort implements Sorter[int32].
// Complexity: O(n + 2^16) time per row, no allocation once buffers fit.
func (r *RadixSorter) Sort(row []int32, desc bool) {
	n := len(row)
	if n < 2 {
		return
	}

	// Stage 1 (Prepare): identity permutation over row positions.
	b := r.buf
	b.grow(n)
	order, swap, keys := b.order[:n], b.swap[:n], b.keys[:n]
	for i := range order {
		order[i] = i
	}

	// Stage 2 (Execute): two stable counting-sort passes, low digit first.
	var shift uint
	for shift = 0; shift < 32; shift += radixDigitBits {
		fillKeys(keys, row, shift, desc)
		if radixPass(keys, order, swap, b.count) {
			order, swap = swap, order
		}
	}

	// Stage 3 (Finalize): gather values in sorted order and write back.
	vals := b.vals[:n]
	for p, idx := range order {
		vals[p] = row[idx]
	}
	copy(row, vals)
}

// fillKeys extracts the digit at shift for every row position.
func fillKeys(keys []uint16, row []int32, shift uint, desc bool) {
	for i, v := range row {
		k := uint16((uint32(v) ^ radixSignFlip) >> shift)
		if desc {
			k = ^k
		}
		keys[i] = k
	}
}

// radixPass stably distributes src (row positions) into dst by keys[pos].
// It returns false, leaving dst untouched, when every key falls into the
// same bucket and the pass would be the identity.
func radixPass(keys []uint16, src, dst []int, count []int) bool {
	clear(count)
	for _, pos := range src {
		count[keys[pos]]++
	}
	if count[keys[src[0]]] == len(src) {
		return false
	}

	// Prefix sums turn bucket sizes into starting offsets.
	offset := 0
	for d, c := range count {
		count[d] = offset
		offset += c
	}

	for _, pos := range src {
		k := keys[pos]
		dst[count[k]] = pos
		count[k]++
	}

	return true
}
