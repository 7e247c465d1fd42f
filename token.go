package textscan

import (
	"errors"
	"fmt"
)

// Token-level primitives. These mirror the character-level contract at a
// granularity the caller defines: a TokenDecoder reads the unconsumed
// input and reports one token plus the byte width it occupies. Free
// functions rather than methods because Go methods cannot introduce type
// parameters.

// TokenDecoder decodes one token from the head of rest. On success it
// returns the token and its width in bytes; the width must be at least 1
// and at most len(rest). On failure it returns an error and the cursor
// will not move.
type TokenDecoder[T any] func(rest []byte) (tok T, width int, err error)

// PeekToken decodes the token at the current position without advancing.
// Returns ErrEndOfInput at the end of the buffer, the decoder's error if
// decoding fails, or ErrBadTokenWidth if the decoder violates its width
// contract.
func PeekToken[T any](c *Cursor, dec TokenDecoder[T]) (T, int, error) {
	var zero T
	if c.AtEnd() {
		return zero, 0, ErrEndOfInput
	}
	tok, width, err := dec(c.Rest())
	if err != nil {
		return zero, 0, err
	}
	if width < 1 || width > c.Remaining() {
		return zero, 0, fmt.Errorf("%w: width %d with %d bytes remaining", ErrBadTokenWidth, width, c.Remaining())
	}
	return tok, width, nil
}

// AdvanceToken decodes and consumes one token, advancing the cursor by
// the token's width. Same failure modes as PeekToken; on failure the
// cursor does not move.
func AdvanceToken[T any](c *Cursor, dec TokenDecoder[T]) (T, int, error) {
	tok, width, err := PeekToken(c, dec)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	c.pos += width
	return tok, width, nil
}

// TakeTokensWhile decodes and consumes tokens for as long as pred holds,
// returning the tokens and the span covering them. Consumption stops at
// the first token failing pred, at the end of input, or at a decoder
// failure. A decoder failure is reported alongside the consumed prefix,
// matching TakeWhile's policy for malformed UTF-8: the prefix stays
// consumed and the cursor stops where decoding failed.
func TakeTokensWhile[T any](c *Cursor, dec TokenDecoder[T], pred func(T) bool) ([]T, Span, error) {
	start := c.pos
	var toks []T
	for {
		tok, width, err := PeekToken(c, dec)
		if errors.Is(err, ErrEndOfInput) {
			return toks, Span{Start: start, End: c.pos}, nil
		}
		if err != nil {
			return toks, Span{Start: start, End: c.pos}, err
		}
		if !pred(tok) {
			return toks, Span{Start: start, End: c.pos}, nil
		}
		c.pos += width
		toks = append(toks, tok)
	}
}
