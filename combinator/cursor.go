package combinator

import "fmt"

// Cursor is an immutable read position in an input string.
// Offsets are byte offsets. A Cursor may point past the end of its text;
// reads there simply find nothing.
type Cursor struct {
	text   string
	offset int
}

// NewCursor returns a cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{text: text}
}

// CursorAt returns a cursor at an arbitrary offset into text.
func CursorAt(text string, offset int) Cursor {
	return Cursor{text: text, offset: offset}
}

// Text returns the full input the cursor reads from.
func (c Cursor) Text() string {
	return c.text
}

// Offset returns the current byte offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of bytes left after the offset.
func (c Cursor) Remaining() int {
	if c.offset < 0 || c.offset >= len(c.text) {
		return 0
	}
	return len(c.text) - c.offset
}

// AtEnd reports whether no input is left.
func (c Cursor) AtEnd() bool {
	return c.Remaining() == 0
}

// Peek returns the next n bytes without moving the cursor.
// It returns "" when fewer than n bytes remain.
func (c Cursor) Peek(n int) string {
	if n < 0 || c.offset < 0 || c.offset > len(c.text) || n > len(c.text)-c.offset {
		return ""
	}
	return c.text[c.offset : c.offset+n]
}

// Advance returns a new cursor n bytes further along. No bounds check is done.
func (c Cursor) Advance(n int) Cursor {
	return Cursor{text: c.text, offset: c.offset + n}
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d/%d", c.offset, len(c.text))
}
