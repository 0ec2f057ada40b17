package lsp

import "strings"

// Position is an LSP 0-based line/character pair.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// OffsetAt converts a 0-based line/character position in text to a byte
// offset, grounded on sfc.locate's inverse (line-counting scan) — this
// direction (position→offset) is specific to LSP request handling, so it
// lives here rather than in sfc.
func OffsetAt(text string, pos Position) int {
	line := 0
	offset := 0
	for line < pos.Line {
		idx := strings.IndexByte(text[offset:], '\n')
		if idx < 0 {
			return len(text)
		}
		offset += idx + 1
		line++
	}
	end := strings.IndexByte(text[offset:], '\n')
	lineLen := len(text) - offset
	if end >= 0 {
		lineLen = end
	}
	if pos.Character > lineLen {
		pos.Character = lineLen
	}
	return offset + pos.Character
}

// PositionAt converts a byte offset in text back to a 0-based line/character.
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	line := 0
	lastNL := -1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lastNL = i
		}
	}
	return Position{Line: line, Character: offset - lastNL - 1}
}
