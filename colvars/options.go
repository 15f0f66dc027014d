// SPDX-License-Identifier: MIT

package colvars

// DefaultNARemove keeps missing values in the computation, so a column
// holding one yields NaN.
const DefaultNARemove = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	naRemove bool // DefaultNARemove
}

// WithNARemove skips NA and NaN entries; each skipped entry shrinks the
// column's sample size by one.
func WithNARemove() Option {
	return func(o *Options) { o.naRemove = true }
}

// WithNARemoval sets NA removal explicitly, which is convenient when the
// flag arrives from a caller as a plain bool.
func WithNARemoval(remove bool) Option {
	return func(o *Options) { o.naRemove = remove }
}

// gatherOptions applies user setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{naRemove: DefaultNARemove}
	for _, set := range user {
		set(&o)
	}

	return o
}
