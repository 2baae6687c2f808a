package rawmem

import "errors"

var (
	// ErrInvalidPatternFormat is returned when a pattern is empty, has an odd
	// number of characters, or contains characters other than hex digits and '?'.
	ErrInvalidPatternFormat = errors.New("invalid pattern format")

	// ErrNullBaseAddress is returned when a pointer chase starts at address zero.
	ErrNullBaseAddress = errors.New("null base address")

	// ErrEmptyOffsetChain is returned when a pointer chain has no offsets.
	ErrEmptyOffsetChain = errors.New("empty offset chain")

	// ErrInvalidIntermediatePointer is returned when a pointer read in the
	// middle of a chain is zero.
	ErrInvalidIntermediatePointer = errors.New("invalid intermediate pointer")

	// ErrInvalidHexString is returned by DecodeHex for malformed input.
	ErrInvalidHexString = errors.New("invalid hex string")
)
