package fit

import "errors"

var (
	// ErrUnknownCategory means no size chart exists for the requested
	// category and no fallback chart is configured. Configuration problem,
	// surfaced to the caller, never retried.
	ErrUnknownCategory = errors.New("no size chart available for category")

	// ErrInsufficientData means no usable measurement was supplied and no
	// default measurement policy is configured. The caller should collect
	// more input; retrying with the same request yields the same answer.
	ErrInsufficientData = errors.New("no usable measurements supplied")
)
