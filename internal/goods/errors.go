package goods

import "errors"

var (
	// ErrRangeLookup means a roll matched no range in a season's table.
	// With a validated store this only happens for rolls outside 1..100.
	ErrRangeLookup = errors.New("roll matches no table range")

	// ErrUnknownProduct means the product has no entry in the price table.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidInput covers caller-supplied values that are out of range:
	// negative location stats, oversized partial purchases, unknown codes.
	ErrInvalidInput = errors.New("invalid input")
)
