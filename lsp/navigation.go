package lsp

import (
	"strings"

	"github.com/vizehq/vize/template"
)

// Location is a zero-or-more-range pointer into a single document, the
// degenerate single-file form of LSP's Location (this server only ever
// resolves within the document that was asked about — spec.md §4.J scopes
// definition/references to "identifiers local to the SFC").
type Location struct {
	Start Position
	End   Position
}

// identifierAndRange finds the template identifier (and its byte range,
// absolute in the SFC source) under offset, or ok=false if offset isn't
// inside a template expression.
func (d *Document) identifierAndRange(offset int) (name string, start, end int, ok bool) {
	if d.descriptor == nil || d.descriptor.TemplateBlock == nil || d.root == nil {
		return "", 0, 0, false
	}
	tplStart := blockContentStart(d.Text, d.descriptor.TemplateBlock)
	tplEnd := tplStart + len(d.descriptor.TemplateBlock.Content)
	if offset < tplStart || offset > tplEnd {
		return "", 0, 0, false
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
		return "", 0, 0, false
	}
	rel := localOffset - hit.Loc.Span.Start
	identStart, identEnd := identifierRange(hit.Content, rel)
	if identStart == identEnd {
		return "", 0, 0, false
	}
	name = hit.Content[identStart:identEnd]
	return name, tplStart + hit.Loc.Span.Start + identStart, tplStart + hit.Loc.Span.Start + identEnd, true
}

func identifierRange(expr string, offset int) (int, int) {
	if offset < 0 || offset > len(expr) {
		return 0, 0
	}
	start, end := offset, offset
	for start > 0 && isIdentByte(expr[start-1]) {
		start--
	}
	for end < len(expr) && isIdentByte(expr[end]) {
		end++
	}
	return start, end
}

// Definition resolves the identifier at offset to its script-level
// declaration, per spec.md §4.J ("template identifier → go to the
// defineProps/ref/computed/... declaration in script setup"). Identifiers
// not in the model's top-level Bindings, such as v-for/v-slot locals,
// resolve to no location.
func (d *Document) Definition(offset int) (Location, bool) {
	name, _, _, ok := d.identifierAndRange(offset)
	if !ok || d.model == nil {
		return Location{}, false
	}
	b, ok := d.model.Bindings[name]
	if !ok || d.descriptor.ScriptSetupBlock == nil {
		return Location{}, false
	}
	base := blockContentStart(d.Text, d.descriptor.ScriptSetupBlock)
	start := PositionAt(d.Text, base+b.Span.Start)
	end := PositionAt(d.Text, base+b.Span.End)
	return Location{Start: start, End: end}, true
}

// References finds every template usage of the identifier at offset, plus
// (when declared=true) its script-setup declaration, per spec.md §4.J.
func (d *Document) References(offset int, declared bool) []Location {
	name, _, _, ok := d.identifierAndRange(offset)
	if !ok {
		return nil
	}
	var out []Location
	if declared && d.model != nil && d.descriptor.ScriptSetupBlock != nil {
		if b, ok := d.model.Bindings[name]; ok {
			base := blockContentStart(d.Text, d.descriptor.ScriptSetupBlock)
			out = append(out, Location{
				Start: PositionAt(d.Text, base+b.Span.Start),
				End:   PositionAt(d.Text, base+b.Span.End),
			})
		}
	}
	if d.root == nil || d.descriptor.TemplateBlock == nil {
		return out
	}
	tplStart := blockContentStart(d.Text, d.descriptor.TemplateBlock)
	template.Walk(d.root.Children, func(node template.Node, path []template.PathEntry) {
		for _, expr := range exprsOf(node) {
			for _, occ := range findIdentifierOccurrences(expr.Content, name) {
				abs := tplStart + expr.Loc.Span.Start + occ
				out = append(out, Location{
					Start: PositionAt(d.Text, abs),
					End:   PositionAt(d.Text, abs+len(name)),
				})
			}
		}
	})
	return out
}

// exprsOf returns every Expression directly attached to node: an
// Interpolation's mustache, or an Element's directive bindings/arguments
// (v-if, v-for's source, :bind, @on, ...).
func exprsOf(node template.Node) []*template.Expression {
	var out []*template.Expression
	switch n := node.(type) {
	case *template.Interpolation:
		if n.Expression != nil {
			out = append(out, n.Expression)
		}
	case *template.Element:
		for _, p := range n.Props {
			if d, ok := p.(*template.Directive); ok {
				if d.Exp != nil {
					out = append(out, d.Exp)
				}
				if d.Arg != nil {
					out = append(out, d.Arg)
				}
			}
		}
	}
	return out
}

func findIdentifierOccurrences(expr, name string) []int {
	var out []int
	idx := 0
	for {
		i := strings.Index(expr[idx:], name)
		if i < 0 {
			break
		}
		pos := idx + i
		before := pos == 0 || !isIdentByte(expr[pos-1])
		after := pos+len(name) >= len(expr) || !isIdentByte(expr[pos+len(name)])
		if before && after {
			out = append(out, pos)
		}
		idx = pos + len(name)
	}
	return out
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// reservedRenameNames are template-magic identifiers that must never be
// renamed (spec.md §4.J prepareRename: "reject $event, $slots, $attrs,
// $refs, $el, $parent, $root, $emit, $props").
var reservedRenameNames = map[string]bool{
	"$event": true, "$slots": true, "$attrs": true, "$refs": true,
	"$el": true, "$parent": true, "$root": true, "$emit": true, "$props": true,
}

// PrepareRename reports whether the identifier at offset may be renamed,
// and its current range.
func (d *Document) PrepareRename(offset int) (start, end int, name string, ok bool) {
	n, s, e, found := d.identifierAndRange(offset)
	if !found || reservedRenameNames[n] || strings.HasPrefix(n, "$") {
		return 0, 0, "", false
	}
	return s, e, n, true
}

// Rename returns the full edit set for renaming the identifier at offset
// to newName: every template occurrence plus the script declaration.
func (d *Document) Rename(offset int, newName string) ([]Location, bool) {
	_, _, _, ok := d.PrepareRename(offset)
	if !ok {
		return nil, false
	}
	return d.References(offset, true), true
}
