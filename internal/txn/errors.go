package txn

import "errors"

// Errors returned by transaction operations.
var (
	// ErrRangeInvalid indicates a step range with End < Start or a
	// negative start offset.
	ErrRangeInvalid = errors.New("invalid step range")

	// ErrRangeOutOfBounds indicates a step range extending past the
	// document it is applied to.
	ErrRangeOutOfBounds = errors.New("step range out of bounds")
)
