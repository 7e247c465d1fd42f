package textscan

import (
	"errors"
	"math"
	"testing"
)

// PeekByte tests

func TestPeekByte(t *testing.T) {
	c := NewString("abc")
	b, ok := c.PeekByte(0)
	if !ok || b != 'a' {
		t.Errorf("expected ('a', true), got (%q, %v)", b, ok)
	}
	b, ok = c.PeekByte(2)
	if !ok || b != 'c' {
		t.Errorf("expected ('c', true), got (%q, %v)", b, ok)
	}
	if c.Position() != 0 {
		t.Error("PeekByte must not advance")
	}
}

func TestPeekByteOutOfRange(t *testing.T) {
	c := NewString("abc")
	if _, ok := c.PeekByte(3); ok {
		t.Error("peek past end should report not ok")
	}
	if _, ok := c.PeekByte(-1); ok {
		t.Error("negative lookahead should report not ok")
	}
}

func TestPeekByteHugeLookahead(t *testing.T) {
	// pos+ahead would overflow; the lookahead must still report not ok.
	c := NewString("ab")
	if _, err := c.AdvanceByte(); err != nil {
		t.Fatalf("AdvanceByte: %v", err)
	}
	if _, ok := c.PeekByte(math.MaxInt); ok {
		t.Error("maximal lookahead should report not ok")
	}
	if b, ok := c.PeekByte(0); !ok || b != 'b' {
		t.Errorf("cursor should be intact, got (%q, %v)", b, ok)
	}
}

// AdvanceByte tests

func TestAdvanceByte(t *testing.T) {
	c := NewString("ab")
	b, err := c.AdvanceByte()
	if err != nil || b != 'a' {
		t.Errorf("expected ('a', nil), got (%q, %v)", b, err)
	}
	if c.Position() != 1 {
		t.Errorf("expected position 1, got %d", c.Position())
	}
}

func TestAdvanceByteAtEnd(t *testing.T) {
	c := NewString("")
	if _, err := c.AdvanceByte(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("expected ErrEndOfInput, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("failed advance must not move the cursor")
	}
}

// TakeBytes tests

func TestTakeBytes(t *testing.T) {
	c := NewString("abcdef")
	s, err := c.TakeBytes(4)
	if err != nil {
		t.Fatalf("TakeBytes: %v", err)
	}
	if c.Text(s) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", c.Text(s))
	}
	if c.Position() != 4 {
		t.Errorf("expected position 4, got %d", c.Position())
	}
}

func TestTakeBytesInsufficient(t *testing.T) {
	c := NewString("abc")
	if _, err := c.TakeBytes(2); err != nil {
		t.Fatalf("TakeBytes: %v", err)
	}

	_, err := c.TakeBytes(2)
	if !errors.Is(err, ErrInsufficientInput) {
		t.Errorf("expected ErrInsufficientInput, got %v", err)
	}
	if c.Position() != 2 {
		t.Error("failed TakeBytes must not partially advance")
	}
}

func TestTakeBytesNegative(t *testing.T) {
	c := NewString("abc")
	if _, err := c.TakeBytes(-1); !errors.Is(err, ErrInsufficientInput) {
		t.Errorf("expected ErrInsufficientInput for negative count, got %v", err)
	}
}

func TestTakeBytesZero(t *testing.T) {
	c := NewString("abc")
	s, err := c.TakeBytes(0)
	if err != nil {
		t.Fatalf("TakeBytes(0): %v", err)
	}
	if !s.IsEmpty() || c.Position() != 0 {
		t.Error("TakeBytes(0) should consume nothing")
	}
}

// Accept tests

func TestAcceptByte(t *testing.T) {
	c := NewString("ab")
	if !c.AcceptByte('a') {
		t.Error("expected AcceptByte('a') to consume")
	}
	if c.AcceptByte('x') {
		t.Error("AcceptByte must not consume on mismatch")
	}
	if c.Position() != 1 {
		t.Errorf("expected position 1, got %d", c.Position())
	}
}

func TestAcceptByteFunc(t *testing.T) {
	c := NewString("7x")
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }

	b, ok := c.AcceptByteFunc(isDigit)
	if !ok || b != '7' {
		t.Errorf("expected ('7', true), got (%q, %v)", b, ok)
	}
	if _, ok := c.AcceptByteFunc(isDigit); ok {
		t.Error("'x' should not be accepted as a digit")
	}
}

// TakeUntilByte tests

func TestTakeUntilByte(t *testing.T) {
	c := NewString("key=value")
	s := c.TakeUntilByte('=')
	if c.Text(s) != "key" {
		t.Errorf("expected %q, got %q", "key", c.Text(s))
	}
	if b, _ := c.PeekByte(0); b != '=' {
		t.Error("cursor should stop on the delimiter, not past it")
	}
}

func TestTakeUntilByteNotFound(t *testing.T) {
	c := NewString("abc")
	s := c.TakeUntilByte('|')
	if c.Text(s) != "abc" {
		t.Errorf("expected the whole buffer, got %q", c.Text(s))
	}
	if !c.AtEnd() {
		t.Error("cursor should be at end")
	}
}

func TestTakeUntilByteImmediate(t *testing.T) {
	c := NewString("=rest")
	s := c.TakeUntilByte('=')
	if !s.IsEmpty() || c.Position() != 0 {
		t.Error("immediate delimiter should yield an empty span and no movement")
	}
}

// MatchLiteral tests

func TestMatchLiteral(t *testing.T) {
	c := NewString("foobar")
	if err := c.MatchLiteral([]byte("foo")); err != nil {
		t.Fatalf("MatchLiteral: %v", err)
	}
	if c.Position() != 3 {
		t.Errorf("expected position 3, got %d", c.Position())
	}
}

func TestMatchLiteralMismatch(t *testing.T) {
	c := NewString("foobar")
	if err := c.MatchLiteral([]byte("baz")); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("failed match must not move the cursor")
	}
	if c.Remaining() != 6 {
		t.Errorf("Remaining should be unchanged, got %d", c.Remaining())
	}
}

func TestMatchLiteralPartialPrefix(t *testing.T) {
	// Shares a prefix with the input but diverges: still no consumption.
	c := NewString("foobar")
	if err := c.MatchLiteral([]byte("fox")); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("partial prefix match must not consume")
	}
}

func TestMatchLiteralTooLong(t *testing.T) {
	c := NewString("fo")
	if err := c.MatchLiteral([]byte("foo")); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("over-long literal must not consume")
	}
}

func TestMatchLiteralEmpty(t *testing.T) {
	c := NewString("abc")
	if err := c.MatchLiteral(nil); err != nil {
		t.Errorf("empty literal should always match, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("empty literal should consume nothing")
	}
}

func TestMatchStringTooLong(t *testing.T) {
	c := NewString("fo")
	if err := c.MatchString("foo"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
	if c.Position() != 0 {
		t.Error("over-long literal must not consume")
	}
}

func TestMatchString(t *testing.T) {
	c := NewString("let x")
	if err := c.MatchString("let"); err != nil {
		t.Fatalf("MatchString: %v", err)
	}
	if err := c.MatchString("let"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}
	if c.Position() != 3 {
		t.Errorf("expected position 3, got %d", c.Position())
	}
}
