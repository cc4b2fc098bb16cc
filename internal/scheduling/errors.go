package scheduling

import "errors"

var (
	// ErrInvalidInput is returned for programmer-error inputs: non-positive
	// durations, negative prices, an empty service selection, unknown view modes.
	ErrInvalidInput = errors.New("scheduling: invalid input")

	// ErrSlotUnavailable is returned by CheckSlot when the slot exists but is taken.
	ErrSlotUnavailable = errors.New("scheduling: slot is not available")
)
