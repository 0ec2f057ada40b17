package sfc

import (
	"strings"

	"github.com/vizehq/vize/arena"
)

// Split parses source into a Descriptor, following the byte-scanner
// algorithm in spec.md 4.B. The scanner looks for `<` (grounded on the
// teacher's reliance on golang.org/x/net/html for the full-document
// fallback path, generalized here into a hand-rolled top-level-only scan
// since SFC blocks are never nested beyond <template>'s own markup).
func Split(a *arena.Arena, filename, source string) (*Descriptor, error) {
	d := &Descriptor{Filename: filename, Source: source}

	i := 0
	n := len(source)
	for i < n {
		// Skip whitespace and stray text between blocks (spec.md 4.B.1).
		for i < n && isSpace(source[i]) {
			i++
		}
		if i >= n {
			break
		}
		if source[i] != '<' {
			// Skip any non-tag content between top-level blocks.
			next := strings.IndexByte(source[i:], '<')
			if next < 0 {
				break
			}
			i += next
			continue
		}
		if i+1 < n && source[i+1] == '!' {
			// HTML comment at top level: skip to "-->".
			end := strings.Index(source[i:], "-->")
			if end < 0 {
				return nil, &ParseError{Code: ErrUnexpectedEOF, Span: Span{Start: i, End: n}, Msg: "unterminated comment at top level"}
			}
			i += end + len("-->")
			continue
		}

		tagStart := i
		tagName, attrs, headerEnd, selfClosing, err := parseTagHeader(source, i)
		if err != nil {
			return nil, err
		}

		lowerTag := strings.ToLower(tagName)
		var content string
		var contentSpan Span
		blockEnd := headerEnd

		if !selfClosing {
			closeIdx, bodyEnd, cerr := findClose(source, headerEnd, lowerTag)
			if cerr != nil {
				return nil, cerr
			}
			contentSpan = Span{Start: headerEnd, End: closeIdx}
			content = contentSpan.Text(source)
			blockEnd = bodyEnd
		}

		block := &Block{
			Tag:     lowerTag,
			Attrs:   attrs,
			Content: content,
			Loc:     locate(source, Span{Start: tagStart, End: blockEnd}),
		}
		if lang, ok := block.Attr("lang"); ok {
			block.Lang = lang
		}

		if err := assign(a, d, block); err != nil {
			return nil, err
		}

		i = blockEnd
	}

	return d, nil
}

func assign(a *arena.Arena, d *Descriptor, b *Block) error {
	switch b.Tag {
	case "template":
		if d.TemplateBlock != nil {
			return &ParseError{Code: ErrDuplicateTemplate, Span: b.Loc.Span, Msg: "duplicate <template> block"}
		}
		d.TemplateBlock = b
	case "script":
		_, setup := b.Attr("setup")
		if setup {
			if d.ScriptSetupBlock != nil {
				return &ParseError{Code: ErrDuplicateSetup, Span: b.Loc.Span, Msg: "duplicate <script setup> block"}
			}
			d.ScriptSetupBlock = b
		} else {
			if d.ScriptBlock != nil {
				return &ParseError{Code: ErrDuplicateScript, Span: b.Loc.Span, Msg: "duplicate <script> block"}
			}
			d.ScriptBlock = b
		}
	case "style":
		d.StyleBlocks = append(d.StyleBlocks, b)
	default:
		d.CustomBlocks = append(d.CustomBlocks, b)
	}
	return nil
}

// parseTagHeader parses "<tag attr=val ...>" or "<tag attr=val .../>"
// starting at i (source[i] == '<'). Returns the tag name, its attributes,
// the offset just past '>', and whether the tag was self-closing.
func parseTagHeader(source string, i int) (string, arena.Map[string], int, bool, error) {
	n := len(source)
	p := i + 1
	nameStart := p
	for p < n && isTagNameChar(source[p]) {
		p++
	}
	if p == nameStart {
		return "", arena.Map[string]{}, 0, false, &ParseError{Code: ErrMalformedTag, Span: Span{Start: i, End: p}, Msg: "expected tag name after '<'"}
	}
	tagName := source[nameStart:p]

	attrs := arena.NewMap[string]()
	selfClosing := false
	for {
		for p < n && isSpace(source[p]) {
			p++
		}
		if p >= n {
			return "", attrs, 0, false, &ParseError{Code: ErrUnexpectedEOF, Span: Span{Start: i, End: n}, Msg: "unterminated tag"}
		}
		if source[p] == '/' && p+1 < n && source[p+1] == '>' {
			selfClosing = true
			p += 2
			break
		}
		if source[p] == '>' {
			p++
			break
		}

		attrNameStart := p
		for p < n && isAttrNameChar(source[p]) {
			p++
		}
		if p == attrNameStart {
			return "", attrs, 0, false, &ParseError{Code: ErrMalformedTag, Span: Span{Start: i, End: p}, Msg: "malformed attribute"}
		}
		attrName := strings.ToLower(source[attrNameStart:p])

		for p < n && isSpace(source[p]) {
			p++
		}
		value := ""
		if p < n && source[p] == '=' {
			p++
			for p < n && isSpace(source[p]) {
				p++
			}
			if p < n && (source[p] == '"' || source[p] == '\'') {
				quote := source[p]
				p++
				valStart := p
				for p < n && source[p] != quote {
					p++
				}
				if p >= n {
					return "", attrs, 0, false, &ParseError{Code: ErrUnexpectedEOF, Span: Span{Start: i, End: n}, Msg: "unterminated attribute value"}
				}
				value = source[valStart:p]
				p++
			} else {
				valStart := p
				for p < n && !isSpace(source[p]) && source[p] != '>' {
					p++
				}
				value = source[valStart:p]
			}
		}
		attrs.Set(attrName, value)
	}

	return tagName, attrs, p, selfClosing, nil
}

// findClose finds the matching "</tag>" for a block whose content starts
// at start. For "template" it tracks nesting depth so a <template> inside
// the template block's own markup doesn't close the outer block early
// (spec.md 4.B.5).
func findClose(source string, start int, tag string) (int, int, error) {
	openTag := "<" + tag
	closeTag := "</" + tag
	depth := 1
	p := start
	for {
		nextOpen := indexFoldFrom(source, openTag, p)
		nextClose := indexFoldFrom(source, closeTag, p)
		if nextClose < 0 {
			return 0, 0, &ParseError{Code: ErrUnexpectedEOF, Span: Span{Start: start, End: len(source)}, Msg: "unterminated <" + tag + "> block"}
		}
		if tag == "template" && nextOpen >= 0 && nextOpen < nextClose {
			// only count it as a nested open if it's a tag boundary (followed
			// by whitespace, '>', or '/').
			after := nextOpen + len(openTag)
			if after < len(source) && (isSpace(source[after]) || source[after] == '>' || source[after] == '/') {
				depth++
				p = after
				continue
			}
			p = nextOpen + 1
			continue
		}
		depth--
		if depth == 0 {
			closeEnd := nextClose + len(closeTag)
			gt := strings.IndexByte(source[closeEnd:], '>')
			if gt < 0 {
				return 0, 0, &ParseError{Code: ErrUnexpectedEOF, Span: Span{Start: nextClose, End: len(source)}, Msg: "unterminated closing tag"}
			}
			return nextClose, closeEnd + gt + 1, nil
		}
		p = nextClose + len(closeTag)
	}
}

func indexFoldFrom(source, substr string, from int) int {
	if from >= len(source) {
		return -1
	}
	idx := strings.Index(strings.ToLower(source[from:]), strings.ToLower(substr))
	if idx < 0 {
		return -1
	}
	return from + idx
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isTagNameChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-' || b == '_'
}

func isAttrNameChar(b byte) bool {
	return isTagNameChar(b) || b == ':' || b == '@'
}
