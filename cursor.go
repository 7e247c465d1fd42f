package textscan

import "bytes"

// Cursor is a position-tracking view over an immutable byte buffer.
// It borrows the buffer; it never copies or mutates it. All spans it
// produces are views into that same buffer.
//
// A Cursor is not safe for concurrent mutation. For speculative parsing
// from multiple goroutines, give each its own Clone; clones share the
// buffer and advance independently.
type Cursor struct {
	buf []byte
	pos int
}

// Checkpoint is a saved cursor position used for backtracking. Checkpoints
// are cheap value types; copying one copies an integer. A checkpoint can
// only be restored on the cursor that created it.
type Checkpoint struct {
	owner *Cursor
	pos   int
}

// Position returns the byte offset the checkpoint was taken at.
func (cp Checkpoint) Position() int {
	return cp.pos
}

// New creates a cursor over buf positioned at offset 0. The buffer may be
// empty. The cursor keeps a reference to buf for its entire lifetime; the
// caller must not mutate buf while the cursor or any span into it is in use.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewString creates a cursor over the bytes of s. The string is converted
// to a byte slice once at construction; no further copies are made.
func NewString(s string) *Cursor {
	return &Cursor{buf: []byte(s)}
}

// Position returns the current byte offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// AtEnd returns true if the cursor has consumed the entire buffer.
func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.buf)
}

// Remaining returns the count of bytes not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Rest returns the unconsumed tail of the buffer. The returned slice is a
// view into the buffer, not a copy.
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:]
}

// Clone returns an independent cursor over the same buffer at the same
// position. Clones do not share checkpoints: a checkpoint minted by one
// cursor cannot be restored on another.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos}
}

// Bytes resolves a span produced by this cursor back into the buffer.
// The result is a view, not a copy. Passing a span that was not produced
// over this cursor's buffer may panic on out-of-range offsets.
func (c *Cursor) Bytes(s Span) []byte {
	return c.buf[s.Start:s.End]
}

// Text resolves a span to a string. Unlike Bytes this allocates a copy.
func (c *Cursor) Text(s Span) string {
	return string(c.buf[s.Start:s.End])
}

// Checkpoint captures the current position for later Restore. O(1), no
// side effects. Any number of checkpoints may coexist and restoring one
// does not invalidate the others.
func (c *Cursor) Checkpoint() Checkpoint {
	return Checkpoint{owner: c, pos: c.pos}
}

// Restore rewinds (or advances) the cursor to a previously captured
// checkpoint. After Restore the cursor is exactly where it was when the
// checkpoint was taken, no matter what ran in between. Returns
// ErrInvalidCheckpoint if the checkpoint was created by a different
// cursor, including a Clone.
func (c *Cursor) Restore(cp Checkpoint) error {
	if cp.owner != c {
		return ErrInvalidCheckpoint
	}
	c.pos = cp.pos
	return nil
}

// SpanSince returns the span consumed between the checkpoint and the
// current position. If the cursor has moved backwards past the checkpoint,
// the span is empty at the current position. Returns ErrInvalidCheckpoint
// if the checkpoint belongs to a different cursor.
func (c *Cursor) SpanSince(cp Checkpoint) (Span, error) {
	if cp.owner != c {
		return Span{}, ErrInvalidCheckpoint
	}
	if c.pos < cp.pos {
		return Span{Start: c.pos, End: c.pos}, nil
	}
	return Span{Start: cp.pos, End: c.pos}, nil
}

// Location converts a byte offset into a 1-based line and column for
// error reporting. Columns count decoded characters, not bytes; a byte
// that is not valid UTF-8 counts as one column. Offsets outside the
// buffer are clamped.
func (c *Cursor) Location(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.buf) {
		offset = len(c.buf)
	}

	line = 1 + bytes.Count(c.buf[:offset], []byte{'\n'})

	lineStart := 0
	if i := bytes.LastIndexByte(c.buf[:offset], '\n'); i >= 0 {
		lineStart = i + 1
	}

	col = 1
	for range string(c.buf[lineStart:offset]) {
		col++
	}
	return line, col
}
