package format

import "errors"

// Sentinel errors for malformed input (spec.md §7 InputMalformed).
var (
	// ErrRowWidthMismatch reports a dense row whose length disagrees with
	// the width fixed by the first row.
	ErrRowWidthMismatch = errors.New("format: row width does not match first row")

	// ErrEmptyInput reports an input stream with no rows.
	ErrEmptyInput = errors.New("format: no rows in input")

	// ErrMalformedOrdinal reports a numeric row whose ordinal list could
	// not be parsed as ascending comma-separated non-negative integers.
	ErrMalformedOrdinal = errors.New("format: malformed numeric ordinal list")
)
