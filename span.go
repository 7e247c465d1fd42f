package textscan

import "fmt"

// Span is a half-open byte-offset range [Start, End) into a cursor's buffer.
// Span is an immutable value type. It holds no reference to the buffer;
// resolve it back into bytes with Cursor.Bytes or Cursor.Text. A span stays
// valid as long as the buffer it was produced over, regardless of what the
// cursor does afterwards.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Contains returns true if the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// String returns a string representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("Span[%d,%d)", s.Start, s.End)
}
