// Package textscan provides a cursor over an immutable byte buffer, built
// as the foundation for hand-written parsers.
//
// The textscan package handles:
//
//   - Byte-level lookahead and consumption with PeekByte, AdvanceByte,
//     TakeBytes and MatchLiteral
//   - UTF-8-aware character operations with PeekChar, AdvanceChar,
//     TakeWhile and SkipWhile
//   - Grapheme-cluster operations (user-perceived characters) with
//     PeekGrapheme and friends
//   - Caller-defined token granularity via PeekToken, AdvanceToken and
//     TakeTokensWhile
//   - Cheap backtracking with Checkpoint and Restore
//   - Line/column lookup for error reporting with Location
//
// Spans:
//
// Consumption primitives report what they consumed as a Span, a
// (start, end) byte-offset pair. Spans are views: resolving one with
// Cursor.Bytes returns a slice into the original buffer without copying.
// A span stays valid for the lifetime of the buffer, not the cursor.
//
// Failure model:
//
// Every fallible primitive returns a sentinel error (ErrEndOfInput,
// ErrInsufficientInput, ErrInvalidEncoding, ErrNoMatch,
// ErrInvalidCheckpoint) and leaves the cursor exactly where it was.
// There is no unrecoverable state: after any failure the caller can try
// a different primitive or restore a checkpoint.
//
// Basic usage:
//
//	c := textscan.NewString("abc123")
//
//	word, _ := c.TakeWhile(unicode.IsLetter)  // span over "abc"
//	num, _ := c.TakeWhile(unicode.IsDigit)    // span over "123"
//
//	fmt.Println(c.Text(word), c.Text(num), c.AtEnd())
//
// Backtracking:
//
//	cp := c.Checkpoint()
//	if err := c.MatchString("let "); err != nil {
//		c.Restore(cp) // back to where we were, speculation failed
//	}
//
// Thread Safety:
//
// A Cursor is a single-owner type: at most one goroutine may advance it
// at a time. The buffer is never mutated, so any number of cursors
// created with Clone may scan the same buffer concurrently, each from
// its own goroutine.
package textscan
