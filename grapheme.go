package textscan

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Grapheme-cluster primitives. A grapheme cluster is a user-perceived
// character per Unicode UAX #29: "é" written as e plus a combining acute
// is two scalar values but one cluster. These mirror the character-level
// contract at cluster granularity, using spans because a cluster can be
// several characters long.

// PeekGrapheme returns the span of the grapheme cluster at the current
// position without advancing. Returns ErrEndOfInput at the end of the
// buffer and ErrInvalidEncoding if the cluster would start on a
// malformed UTF-8 sequence.
func (c *Cursor) PeekGrapheme() (Span, error) {
	if c.AtEnd() {
		return Span{}, ErrEndOfInput
	}
	if r, size := utf8.DecodeRune(c.buf[c.pos:]); r == utf8.RuneError && size == 1 {
		return Span{}, ErrInvalidEncoding
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(c.buf[c.pos:], -1)
	return Span{Start: c.pos, End: c.pos + len(cluster)}, nil
}

// AdvanceGrapheme consumes one grapheme cluster, advancing by its byte
// width, and returns its span. Same failure modes as PeekGrapheme; on
// failure the cursor does not move.
func (c *Cursor) AdvanceGrapheme() (Span, error) {
	s, err := c.PeekGrapheme()
	if err != nil {
		return Span{}, err
	}
	c.pos = s.End
	return s, nil
}

// TakeGraphemesWhile consumes grapheme clusters for as long as pred holds
// for the cluster's bytes, returning the covering span and the count of
// clusters consumed. Stops at the first cluster failing pred, at the end
// of input, or at malformed UTF-8, which is reported alongside the
// consumed prefix like TakeWhile does.
func (c *Cursor) TakeGraphemesWhile(pred func(cluster []byte) bool) (Span, int, error) {
	start := c.pos
	n := 0
	state := -1
	for !c.AtEnd() {
		if r, size := utf8.DecodeRune(c.buf[c.pos:]); r == utf8.RuneError && size == 1 {
			return Span{Start: start, End: c.pos}, n, ErrInvalidEncoding
		}
		cluster, _, _, newState := uniseg.FirstGraphemeCluster(c.buf[c.pos:], state)
		if !pred(cluster) {
			break
		}
		c.pos += len(cluster)
		n++
		state = newState
	}
	return Span{Start: start, End: c.pos}, n, nil
}
