package lsp

import (
	"fmt"
	"strings"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// HoverResult is the wire shape of a textDocument/hover response.
type HoverResult struct {
	Contents string
	Found    bool
}

// Hover resolves pos to the enclosing SFC block and, inside the
// template, to a Croquis binding (spec.md §4.J: "template identifier →
// Croquis binding/type; script identifier → forward to external TS...;
// CSS → selector info"). Script/CSS resolution both need external
// tooling this package doesn't own the process lifecycle for (the TS
// client, a CSS parser) — callers pass those results in separately by
// checking Found first.
func (d *Document) Hover(offset int) HoverResult {
	if d.descriptor == nil || d.descriptor.TemplateBlock == nil || d.root == nil {
		return HoverResult{}
	}
	tplStart := blockContentStart(d.Text, d.descriptor.TemplateBlock)
	tplEnd := tplStart + len(d.descriptor.TemplateBlock.Content)
	if offset < tplStart || offset > tplEnd {
		return HoverResult{}
	}
	localOffset := offset - tplStart

	var hit *template.Expression
	template.Walk(d.root.Children, func(node template.Node, path []template.PathEntry) {
		if hit != nil {
			return
		}
		hit = exprContaining(node, localOffset)
	})
	if hit == nil {
		return HoverResult{}
	}
	ident := identifierAt(hit.Content, localOffset-hit.Loc.Span.Start)
	if ident == "" {
		return HoverResult{}
	}
	b, ok := d.model.Bindings[ident]
	if !ok {
		return HoverResult{Contents: fmt.Sprintf("`%s`: unresolved", ident), Found: true}
	}
	return HoverResult{Contents: describeBinding(ident, b), Found: true}
}

func describeBinding(name string, b *croquis.Binding) string {
	switch b.Type {
	case croquis.SetupRef, croquis.SetupMaybeRef:
		return fmt.Sprintf("`%s`: ref (script setup)", name)
	case croquis.Props, croquis.PropsAliased:
		return fmt.Sprintf("`%s`: prop", name)
	default:
		return fmt.Sprintf("`%s`: %s", name, b.Type)
	}
}

func exprContaining(node template.Node, offset int) *template.Expression {
	for _, expr := range exprsOf(node) {
		if withinSpan(expr.Loc, offset) {
			return expr
		}
	}
	return nil
}

func withinSpan(loc sfc.SourceLocation, offset int) bool {
	return offset >= loc.Span.Start && offset <= loc.Span.End
}

func identifierAt(expr string, offset int) string {
	if offset < 0 || offset > len(expr) {
		return ""
	}
	start, end := offset, offset
	isIdentByte := func(b byte) bool {
		return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
	}
	for start > 0 && isIdentByte(expr[start-1]) {
		start--
	}
	for end < len(expr) && isIdentByte(expr[end]) {
		end++
	}
	return strings.TrimSpace(expr[start:end])
}
