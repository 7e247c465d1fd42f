package textscan

import (
	"errors"
	"unicode/utf8"
)

// Character-level primitives. These decode UTF-8 at the current position
// and keep the cursor on character boundaries as long as only this layer
// is used for advancement.

// PeekChar decodes the character at the current position without
// advancing, returning the character and its byte width. Returns
// ErrEndOfInput at the end of the buffer and ErrInvalidEncoding if the
// bytes at the position are not well-formed UTF-8.
func (c *Cursor) PeekChar() (rune, int, error) {
	if c.AtEnd() {
		return 0, 0, ErrEndOfInput
	}
	r, size := utf8.DecodeRune(c.buf[c.pos:])
	if r == utf8.RuneError && size == 1 {
		return 0, 0, ErrInvalidEncoding
	}
	return r, size, nil
}

// AdvanceChar decodes and consumes one character, advancing by its byte
// width. Same failure modes as PeekChar; on failure the cursor does not
// move.
func (c *Cursor) AdvanceChar() (rune, int, error) {
	r, size, err := c.PeekChar()
	if err != nil {
		return 0, 0, err
	}
	c.pos += size
	return r, size, nil
}

// AcceptChar consumes the next character if it equals r. Returns true if
// it was consumed. Invalid UTF-8 at the position never matches.
func (c *Cursor) AcceptChar(r rune) bool {
	got, size, err := c.PeekChar()
	if err != nil || got != r {
		return false
	}
	c.pos += size
	return true
}

// AcceptCharFunc consumes the next character if f reports true for it,
// returning the character and whether it was consumed.
func (c *Cursor) AcceptCharFunc(f func(rune) bool) (rune, bool) {
	got, size, err := c.PeekChar()
	if err != nil || !f(got) {
		return 0, false
	}
	c.pos += size
	return got, true
}

// TakeWhile consumes characters for as long as pred holds, returning the
// span covering them. Consumption stops at the first character failing
// pred, at the end of input, or at malformed UTF-8. Malformed UTF-8 is
// reported as ErrInvalidEncoding alongside the consumed prefix: the
// prefix stays consumed, the cursor stops at the offending byte, and a
// caller that wants stop-silently semantics can ignore the error and
// keep the span.
func (c *Cursor) TakeWhile(pred func(rune) bool) (Span, error) {
	start := c.pos
	for {
		r, size, err := c.PeekChar()
		if errors.Is(err, ErrEndOfInput) {
			return Span{Start: start, End: c.pos}, nil
		}
		if err != nil {
			return Span{Start: start, End: c.pos}, err
		}
		if !pred(r) {
			return Span{Start: start, End: c.pos}, nil
		}
		c.pos += size
	}
}

// SkipWhile consumes characters like TakeWhile but discards the content,
// returning only the count of characters skipped. Same malformed-UTF-8
// policy as TakeWhile.
func (c *Cursor) SkipWhile(pred func(rune) bool) (int, error) {
	n := 0
	for {
		r, size, err := c.PeekChar()
		if errors.Is(err, ErrEndOfInput) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if !pred(r) {
			return n, nil
		}
		c.pos += size
		n++
	}
}

// TakeUntil consumes characters up to, but not including, the first one
// for which pred holds. Equivalent to TakeWhile with the negated
// predicate, including the malformed-UTF-8 policy.
func (c *Cursor) TakeUntil(pred func(rune) bool) (Span, error) {
	return c.TakeWhile(func(r rune) bool { return !pred(r) })
}

// AtCharBoundary returns true if the current position is the start of a
// UTF-8 sequence or the end of the buffer. Byte-level advancement can
// leave the cursor mid-character; this reports whether character-level
// operations are safe to resume.
func (c *Cursor) AtCharBoundary() bool {
	return c.AtEnd() || utf8.RuneStart(c.buf[c.pos])
}

// AlignToCharBoundary advances past UTF-8 continuation bytes until the
// cursor sits on a character boundary or the end of the buffer, returning
// the number of bytes skipped. A well-formed sequence has at most three
// continuation bytes, so this advances at most three bytes on valid
// input. No-op on a boundary.
func (c *Cursor) AlignToCharBoundary() int {
	n := 0
	for !c.AtCharBoundary() {
		c.pos++
		n++
	}
	return n
}
