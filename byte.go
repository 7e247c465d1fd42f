package textscan

import (
	"bytes"
	"fmt"
)

// Byte-level primitives. These operate on raw bytes and make no UTF-8
// boundary guarantees; AdvanceByte in particular can leave the cursor in
// the middle of a multi-byte character. Callers mixing byte-level and
// character-level consumption can re-synchronize with AlignToCharBoundary.

// PeekByte returns the byte at position+ahead without advancing. The
// second result is false if the offset is out of range or ahead is
// negative.
func (c *Cursor) PeekByte(ahead int) (byte, bool) {
	// Compare against the remaining count rather than pos+ahead, which
	// can overflow for huge lookaheads.
	if ahead < 0 || ahead >= c.Remaining() {
		return 0, false
	}
	return c.buf[c.pos+ahead], true
}

// AdvanceByte consumes and returns exactly one byte. Returns ErrEndOfInput
// at the end of the buffer.
func (c *Cursor) AdvanceByte() (byte, error) {
	if c.AtEnd() {
		return 0, ErrEndOfInput
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// TakeBytes consumes the next n bytes and returns the span covering them.
// If fewer than n bytes remain the cursor does not move and
// ErrInsufficientInput is returned; there is no partial consumption.
func (c *Cursor) TakeBytes(n int) (Span, error) {
	if n < 0 {
		return Span{}, fmt.Errorf("%w: negative count %d", ErrInsufficientInput, n)
	}
	if n > c.Remaining() {
		return Span{}, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientInput, n, c.Remaining())
	}
	s := Span{Start: c.pos, End: c.pos + n}
	c.pos += n
	return s, nil
}

// AcceptByte consumes the next byte if it equals b. Returns true if a
// byte was consumed.
func (c *Cursor) AcceptByte(b byte) bool {
	if c.AtEnd() || c.buf[c.pos] != b {
		return false
	}
	c.pos++
	return true
}

// AcceptByteFunc consumes the next byte if f reports true for it,
// returning the byte and whether it was consumed.
func (c *Cursor) AcceptByteFunc(f func(byte) bool) (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	b := c.buf[c.pos]
	if !f(b) {
		return 0, false
	}
	c.pos++
	return b, true
}

// TakeUntilByte consumes bytes up to, but not including, the first
// occurrence of b. If b does not occur the rest of the buffer is consumed.
// Never fails; the span may be empty.
func (c *Cursor) TakeUntilByte(b byte) Span {
	return c.TakeUntilByteFunc(func(x byte) bool { return x == b })
}

// TakeUntilByteFunc consumes bytes up to, but not including, the first
// byte for which f reports true.
func (c *Cursor) TakeUntilByteFunc(f func(byte) bool) Span {
	start := c.pos
	for c.pos < len(c.buf) && !f(c.buf[c.pos]) {
		c.pos++
	}
	return Span{Start: start, End: c.pos}
}

// MatchLiteral consumes the expected bytes if the input at the current
// position starts with them. On mismatch, including when fewer bytes
// remain than expected, the cursor does not move and ErrNoMatch is
// returned. An empty literal always matches and consumes nothing.
func (c *Cursor) MatchLiteral(expected []byte) error {
	return c.match(len(expected), func(head []byte) bool {
		return bytes.Equal(head, expected)
	})
}

// MatchString is MatchLiteral for a string literal.
func (c *Cursor) MatchString(expected string) error {
	return c.match(len(expected), func(head []byte) bool {
		return string(head) == expected
	})
}

// match consumes the next n bytes if eq accepts them; otherwise the
// cursor does not move and ErrNoMatch is returned.
func (c *Cursor) match(n int, eq func(head []byte) bool) error {
	if n > c.Remaining() || !eq(c.buf[c.pos:c.pos+n]) {
		return ErrNoMatch
	}
	c.pos += n
	return nil
}
