// Defines the error taxonomy shared by all engines.
// Every failure kind is a sentinel wrapped with context via fmt.Errorf("%w"),
// so callers can match with errors.Is regardless of the message.

package sim

import "errors"

var (
	// ErrInvalidArgument reports a precondition failure on caller input:
	// non-positive quantum, non-positive allocation size, unrecognized disk
	// direction, negative resource quantities, or dimension mismatches.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientMemory reports that no single free extent is large enough.
	// The caller may retry after other deallocations.
	ErrInsufficientMemory = errors.New("insufficient memory")

	// ErrNotFound reports an absent deallocation target or lookup key.
	ErrNotFound = errors.New("not found")

	// ErrEmptyResult reports statistics requested with nothing completed yet.
	ErrEmptyResult = errors.New("empty result")
)
