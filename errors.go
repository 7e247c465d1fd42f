package textscan

import "errors"

// Scan errors. Every fallible primitive returns one of these sentinels,
// possibly wrapped with position context; check with errors.Is. A failed
// call never moves the cursor, so all of them are recoverable in place.
var (
	// ErrEndOfInput reports an attempt to consume past the end of the buffer.
	ErrEndOfInput = errors.New("end of input")

	// ErrInsufficientInput reports a fixed-size read larger than the
	// remaining input.
	ErrInsufficientInput = errors.New("insufficient input")

	// ErrInvalidEncoding reports malformed UTF-8 at the decode position.
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")

	// ErrNoMatch reports that the input at the current position does not
	// match what the caller asked to consume.
	ErrNoMatch = errors.New("no match")

	// ErrInvalidCheckpoint reports a checkpoint used with a cursor that
	// did not create it.
	ErrInvalidCheckpoint = errors.New("checkpoint from different cursor")

	// ErrBadTokenWidth reports a token decoder that returned a width of
	// zero, a negative width, or a width past the end of the input.
	ErrBadTokenWidth = errors.New("token decoder reported invalid width")
)
