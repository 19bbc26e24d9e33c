package rng

import "errors"

// Sentinel errors carried by panics on contract violations. These are
// programmer errors, not runtime conditions to recover from: callers are
// expected to validate inputs before hot-loop draws. The panic values
// wrap these sentinels, so errors.Is identifies them.
var (
	// ErrInvalidRange reports a ranged draw where max <= min.
	ErrInvalidRange = errors.New("rng: invalid range")

	// ErrEmptySequence reports a selection from an empty slice.
	ErrEmptySequence = errors.New("rng: empty sequence")

	// ErrUnknownCategory reports a Weight or Extreme value outside the
	// declared constants.
	ErrUnknownCategory = errors.New("rng: unknown category")
)
