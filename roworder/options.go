// SPDX-License-Identifier: MIT

// Package roworder: functional configuration for the row-sort kernel.
// This file defines:
//   - RadixPolicy (auto / on / off) and the auto-selection threshold,
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - No dead switches: each flag changes behavior and is covered by tests.
package roworder

import (
	"fmt"
	"log/slog"
)

// RadixPolicy selects whether the integer radix strategy may be used.
type RadixPolicy int

const (
	// RadixAuto uses radix sort for int32 matrices wider than RadixThreshold.
	RadixAuto RadixPolicy = iota

	// RadixOn forces radix sort. On a float64 matrix the request is ignored
	// with a warning and comparison sort is used.
	RadixOn

	// RadixOff forces comparison sort.
	RadixOff
)

// RadixThreshold is the column count above which RadixAuto picks radix sort
// for int32 matrices.
const RadixThreshold = 1024

// String returns "auto", "on" or "off".
func (p RadixPolicy) String() string {
	switch p {
	case RadixAuto:
		return "auto"
	case RadixOn:
		return "on"
	case RadixOff:
		return "off"
	}

	return fmt.Sprintf("RadixPolicy(%d)", int(p))
}

// PolicyFromFlag maps a nullable boolean onto a RadixPolicy:
// nil means auto, true forces radix, false forbids it.
func PolicyFromFlag(flag *bool) RadixPolicy {
	switch {
	case flag == nil:
		return RadixAuto
	case *flag:
		return RadixOn
	default:
		return RadixOff
	}
}

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultDescending sorts rows ascending.
	DefaultDescending = false

	// DefaultRadixPolicy lets the kernel pick the strategy.
	DefaultRadixPolicy = RadixAuto
)

const (
	panicRadixPolicyInvalid = "roworder: WithRadix: unknown policy"
	panicLoggerNil          = "roworder: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	descending bool         // DefaultDescending
	radix      RadixPolicy  // DefaultRadixPolicy
	logger     *slog.Logger // slog.Default() when unset
}

// WithDescending sorts every row from largest to smallest.
func WithDescending() Option {
	return func(o *Options) { o.descending = true }
}

// WithAscending sorts every row from smallest to largest (default).
func WithAscending() Option {
	return func(o *Options) { o.descending = false }
}

// WithRadix sets the radix strategy policy.
// Panics on a value outside {RadixAuto, RadixOn, RadixOff}.
//
// AI-Hints:
//   - RadixOn and RadixOff produce identical output on int32 data; use them
//     to benchmark or to pin the strategy, not to change results.
func WithRadix(p RadixPolicy) Option {
	if p < RadixAuto || p > RadixOff {
		panic(panicRadixPolicyInvalid)
	}

	return func(o *Options) { o.radix = p }
}

// WithLogger routes warnings and strategy diagnostics to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		descending: DefaultDescending,
		radix:      DefaultRadixPolicy,
	}
}

// gatherOptions applies user setters over the defaults in order
// (last-writer-wins) and fills the logger lazily so a later
// slog.SetDefault is honored.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
