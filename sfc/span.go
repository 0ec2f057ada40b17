package sfc

import "strings"

// Span is an absolute byte range into the original SFC source.
type Span struct {
	Start int
	End   int
}

// SourceLocation carries a Span plus its lazily-computed 1-based line/column.
type SourceLocation struct {
	Span        Span
	StartLine   int
	StartColumn int
}

// SourceLocationFor computes a SourceLocation for span against source.
// Exported for other packages (template, script) that build their own
// spans relative to a block's content rather than the full SFC source.
func SourceLocationFor(source string, span Span) SourceLocation {
	return locate(source, span)
}

// locate computes a SourceLocation for span against source, counting
// newlines up to span.Start. Called lazily (only when a caller needs it,
// e.g. to render a diagnostic) rather than on every node, per the arena
// data model's "computed lazily" note.
func locate(source string, span Span) SourceLocation {
	line := 1
	col := 1
	for _, r := range source[:min(span.Start, len(source))] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return SourceLocation{Span: span, StartLine: line, StartColumn: col}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Text returns the substring of source covered by the span.
func (s Span) Text(source string) string {
	if s.Start < 0 || s.End > len(source) || s.Start > s.End {
		return ""
	}
	return source[s.Start:s.End]
}

// trimmedSpan trims leading/trailing whitespace from s, narrowing the span
// to the content that remains.
func trimmedSpan(source string, s Span) Span {
	text := s.Text(source)
	left := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
	right := len(strings.TrimRight(text, " \t\r\n"))
	return Span{Start: s.Start + left, End: s.Start + right}
}
