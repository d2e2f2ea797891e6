// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text renderer. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts rendering and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHeader is the line emitted before each rendered matrix body.
	// The trailing space is part of the historical banner and is preserved.
	DefaultHeader = "[-] Vector elements: "

	// DefaultDelimiter separates elements within a rendered row. A delimiter
	// is emitted BETWEEN elements only — never after the last element of a row.
	DefaultDelimiter = "\t"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDelimiterEmpty = "matrix: WithDelimiter: delimiter must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal render options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective render configuration after applying Option
// setters. It is intentionally unexported-field-only to prevent external
// mutation; public entry points accept `...Option` and internally resolve
// them via gatherOptions.
type Options struct {
	header    string // line above each matrix body; DefaultHeader
	delimiter string // between-element separator; DefaultDelimiter
}

// ---------- Constructors (WithX) ----------

// WithHeader sets the header line emitted before the matrix body.
// The header is printed verbatim followed by a newline; an empty header
// suppresses the header line entirely.
// Complexity: O(1).
func WithHeader(header string) Option {
	// Assign header as given; empty means "no header line".
	return func(o *Options) { o.header = header }
}

// WithDelimiter sets the separator emitted between row elements.
// Implementation:
//   - Stage 1: validate delimiter is non-empty (panic otherwise).
//   - Stage 2: return a setter that writes it into Options.
//
// Errors: panics with a stable message on an empty delimiter (programmer error).
// Complexity: O(1).
func WithDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic(panicDelimiterEmpty)
	}

	// Assign validated delimiter
	return func(o *Options) { o.delimiter = delimiter }
}

// ---------- Internal resolution ----------

// gatherOptions applies opts over the documented defaults and returns the
// effective configuration. Deterministic: options apply in argument order,
// last write wins.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	// Start from the documented defaults.
	o := Options{
		header:    DefaultHeader,
		delimiter: DefaultDelimiter,
	}
	// Apply caller options in order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
