package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// PositionAt converts a byte offset into a zero based line and UTF-16
// character position. Offsets past the end clamp to the end of text.
func PositionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	var line, char protocol.UInteger
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			char = 0
			continue
		}
		if r == utf8.RuneError {
			char++
			continue
		}
		char += protocol.UInteger(utf16.RuneLen(r))
	}
	return protocol.Position{Line: line, Character: char}
}
