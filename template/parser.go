package template

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/sfc"
)

// ParseErrorCode names a template-parser diagnostic (spec.md §7). Unlike
// the SFC splitter's ParseError, these are always non-fatal: they are
// collected and a malformed tag recovers to the next '<'.
type ParseErrorCode string

const (
	ErrUnexpectedEOF ParseErrorCode = "UNEXPECTED_EOF"
	ErrMalformedTag  ParseErrorCode = "MALFORMED_TAG"
)

// ParseError is a collected (non-raised) template parse diagnostic.
type ParseError struct {
	Code ParseErrorCode
	Span sfc.Span
	Msg  string
}

func (e *ParseError) Error() string { return string(e.Code) + ": " + e.Msg }

// voidElements is the HTML void set: these never have children or a
// closing tag, matching spec.md 4.C's grammar note.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse tokenizes template block content (golang.org/x/net/html, whose
// lenient tokenizer happily accepts `:`, `@`, `#` inside attribute names
// — exactly what the directive shorthand grammar needs) and builds the
// arena template AST described in spec.md 4.C.
func Parse(a *arena.Arena, content string) *Root {
	p := &parser{a: a, source: content, tz: html.NewTokenizer(strings.NewReader(content))}
	p.tz.AllowCDATA(true)
	return p.run()
}

type parser struct {
	a      *arena.Arena
	source string
	tz     *html.Tokenizer
	offset int // running byte offset, advanced by len(tz.Raw()) after every token
	errors []*ParseError
}

// loc builds a SourceLocation for a span of length n starting at the
// current token's start offset (tokStart), lazily computing line/column
// per the arena data model's "computed lazily" contract (spec.md §3).
func (p *parser) loc(tokStart, n int) sfc.SourceLocation {
	return sfc.SourceLocationFor(p.source, sfc.Span{Start: tokStart, End: tokStart + n})
}

func (p *parser) run() *Root {
	root := &Root{}
	var stack []*Element

	appendChild := func(n Node) {
		if len(stack) == 0 {
			root.Children = append(root.Children, n)
			return
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, n)
	}

	for {
		tt := p.tz.Next()
		tokStart := p.offset
		p.offset += len(p.tz.Raw())

		switch tt {
		case html.ErrorToken:
			if err := p.tz.Err(); err != nil && err.Error() != "EOF" {
				p.errors = append(p.errors, &ParseError{Code: ErrUnexpectedEOF, Span: sfc.Span{Start: tokStart, End: p.offset}, Msg: err.Error()})
			}
			// Close any still-open elements at EOF (recovery, not fatal).
			for len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			root.Errors = p.errors
			return root

		case html.TextToken:
			p.emitText(string(p.tz.Text()), tokStart, appendChild)

		case html.CommentToken:
			appendChild(&Comment{Content: string(p.tz.Text()), Loc: p.loc(tokStart, p.offset-tokStart)})

		case html.StartTagToken, html.SelfClosingTagToken:
			rawName, _ := p.tz.TagName()
			// TagName lower-cases the name; take its original spelling from
			// the source so PascalCase component tags keep their case.
			tag := p.source[tokStart+1 : tokStart+1+len(rawName)]
			attrs := p.readAttrs()
			props := p.buildProps(attrs)
			el := &Element{
				Tag:           tag,
				TagKind:       classifyTag(tag),
				Props:         props,
				IsSelfClosing: tt == html.SelfClosingTagToken || voidElements[tag],
				Loc:           p.loc(tokStart, p.offset-tokStart),
			}
			appendChild(el)
			if !el.IsSelfClosing {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			name, _ := p.tz.TagName()
			tag := string(name)
			for i := len(stack) - 1; i >= 0; i-- {
				if strings.EqualFold(stack[i].Tag, tag) {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

// emitText splits a text run on `{{ expr }}` interpolations (spec.md 4.C).
// tokStart is the absolute offset of the start of this text token, used to
// compute each resulting Text/Interpolation node's span.
func (p *parser) emitText(text string, tokStart int, appendChild func(Node)) {
	rest := text
	relOffset := 0
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			if rest != "" {
				appendChild(&Text{Content: p.a.AllocString(rest), Loc: p.loc(tokStart+relOffset, len(rest))})
			}
			return
		}
		if start > 0 {
			appendChild(&Text{Content: p.a.AllocString(rest[:start]), Loc: p.loc(tokStart+relOffset, start)})
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			// Unterminated interpolation: treat the remainder as text.
			appendChild(&Text{Content: p.a.AllocString(rest[start:]), Loc: p.loc(tokStart+relOffset+start, len(rest)-start)})
			return
		}
		mustacheStart := tokStart + relOffset + start
		mustacheLen := 2 + end + 2
		exprContent := strings.TrimSpace(rest[start+2 : start+2+end])
		appendChild(&Interpolation{
			Expression: NewSimpleExpression(p.a.AllocString(exprContent), false, p.loc(mustacheStart, mustacheLen)),
			Loc:        p.loc(mustacheStart, mustacheLen),
		})
		consumed := start + mustacheLen
		relOffset += consumed
		rest = rest[consumed:]
	}
}

func (p *parser) readAttrs() []html.Attribute {
	var attrs []html.Attribute
	for {
		key, val, more := p.tz.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
		if !more {
			break
		}
	}
	return attrs
}

// buildProps converts raw HTML attributes into PropNode variants, applying
// the directive shorthand grammar (spec.md 4.C). Per-attribute spans are
// not tracked: the tokenizer exposes attribute values but not their byte
// offsets, and diagnostics that need an attribute's location fall back to
// the owning element's span.
func (p *parser) buildProps(attrs []html.Attribute) []PropNode {
	props := make([]PropNode, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		props = append(props, p.classifyAttr(attr))
	}
	return props
}

func (p *parser) classifyAttr(attr html.Attribute) PropNode {
	name := attr.Key
	var directiveName, rawArgAndMods string

	switch {
	case strings.HasPrefix(name, ":"):
		directiveName, rawArgAndMods = "bind", name[1:]
	case strings.HasPrefix(name, "@"):
		directiveName, rawArgAndMods = "on", name[1:]
	case strings.HasPrefix(name, "#"):
		directiveName, rawArgAndMods = "slot", name[1:]
	case strings.HasPrefix(name, "v-"):
		rest := name[2:]
		colon := strings.IndexByte(rest, ':')
		if colon < 0 {
			directiveName, rawArgAndMods = splitModifiers(rest)
		} else {
			directiveName = rest[:colon]
			rawArgAndMods = rest[colon+1:]
		}
	default:
		val := attr.Val
		return &Attribute{Name: p.a.AllocString(name), Value: &val}
	}

	argPart, mods := splitModifiersKeepArg(rawArgAndMods)
	var arg *Expression
	if argPart != "" {
		isStatic := true
		content := argPart
		if strings.HasPrefix(argPart, "[") && strings.HasSuffix(argPart, "]") {
			isStatic = false
			content = argPart[1 : len(argPart)-1]
		}
		arg = NewSimpleExpression(p.a.AllocString(content), isStatic, sfc.SourceLocation{})
	}

	var exp *Expression
	if attr.Val != "" {
		exp = NewSimpleExpression(p.a.AllocString(attr.Val), false, sfc.SourceLocation{})
	}

	return &Directive{
		Name:      p.a.AllocString(directiveName),
		Arg:       arg,
		Exp:       exp,
		Modifiers: mods,
	}
}

// splitModifiers splits a bare "v-name.mod1.mod2" remainder (no arg) into
// the name and its ".mod1.mod2" trail, which splitModifiersKeepArg then
// turns into an empty arg plus the modifier list; used only for the
// v-name-with-no-colon case.
func splitModifiers(rest string) (string, string) {
	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		return rest, ""
	}
	return rest[:dot], rest[dot:]
}

// splitModifiersKeepArg splits "arg.mod1.mod2" (or just ".mod1.mod2", or
// just "mod1.mod2" when there is no arg) into the arg text and the
// modifier list.
func splitModifiersKeepArg(s string) (string, []string) {
	parts := strings.Split(s, ".")
	arg := parts[0]
	var mods []string
	for _, m := range parts[1:] {
		if m != "" {
			mods = append(mods, m)
		}
	}
	return arg, mods
}

func classifyTag(tag string) TagKind {
	switch tag {
	case "template":
		return TemplateTag
	case "slot":
		return Slot
	}
	if atom.Lookup([]byte(tag)) != 0 {
		return HTMLElement
	}
	// Unknown to the HTML atom table: either a custom element or a
	// user component. spec.md leaves disambiguation to the SFC driver's
	// cross-reference against script-setup imports/components map; here
	// we default to Component, which transform/codegen narrows further
	// once Croquis bindings are available.
	if strings.Contains(tag, "-") || (len(tag) > 0 && tag[0] >= 'A' && tag[0] <= 'Z') {
		return Component
	}
	return HTMLElement
}
