// Package coreerr holds the sentinel errors shared across the analytical
// core, following the plain errors.New convention the rest of the codebase
// uses for its own error tables.
package coreerr

import "errors"

var (
	// ErrInsufficientData means a kernel or detector was given fewer bars
	// than it requires. Callers never see this directly: every stage
	// absorbs it internally and returns an empty result instead.
	ErrInsufficientData = errors.New("insufficient bar data")

	// ErrMalformedBar means a bar violated the OHLC invariants or carried
	// a non-finite value.
	ErrMalformedBar = errors.New("malformed bar")

	// ErrConfigError means a ChanlunParams value or a market name was
	// invalid at construction time. The store and deduper constructors do
	// not return it; they fall back to defaults instead.
	ErrConfigError = errors.New("invalid configuration")
)
