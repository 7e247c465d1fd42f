package textscan

import "unicode"

// Helpers for the runs that nearly every hand-written parser consumes:
// whitespace and identifiers.

// SkipSpaces consumes zero or more Unicode whitespace characters and
// returns the count skipped. Stops quietly at malformed UTF-8; the bytes
// there are not whitespace, so the run is over either way.
func (c *Cursor) SkipSpaces() int {
	n, _ := c.SkipWhile(unicode.IsSpace)
	return n
}

// TakeSpaces consumes one or more Unicode whitespace characters,
// returning the span covering them. Returns ErrNoMatch without moving if
// the next character is not whitespace; ErrEndOfInput and
// ErrInvalidEncoding pass through from the first decode.
func (c *Cursor) TakeSpaces() (Span, error) {
	r, _, err := c.PeekChar()
	if err != nil {
		return Span{}, err
	}
	if !unicode.IsSpace(r) {
		return Span{}, ErrNoMatch
	}
	return c.TakeWhile(unicode.IsSpace)
}

// TakeIdentifier consumes an identifier: a letter or underscore followed
// by zero or more letters, digits, or underscores. Returns ErrNoMatch
// without moving if the next character cannot start an identifier;
// ErrEndOfInput and ErrInvalidEncoding pass through from the first
// decode.
func (c *Cursor) TakeIdentifier() (Span, error) {
	r, size, err := c.PeekChar()
	if err != nil {
		return Span{}, err
	}
	if !isIdentStart(r) {
		return Span{}, ErrNoMatch
	}
	start := c.pos
	c.pos += size
	s, err := c.TakeWhile(isIdentCont)
	return Span{Start: start, End: s.End}, err
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
