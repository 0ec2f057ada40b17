package lsp

import "github.com/vizehq/vize/template"

// SemanticTokenType is the subset of LSP's standard token type legend this
// server emits (order fixes the legend index returned by capabilities).
var SemanticTokenTypes = []string{"variable", "property", "keyword"}

const (
	tokVariable = 0
	tokProperty = 1
	tokKeyword  = 2
)

// SemanticToken is one entry of the flat textDocument/semanticTokens/full
// delta-encoding, pre-delta (line/char absolute); encodeSemanticTokens in
// handlers.go deltas them into the wire `data` array per the LSP spec.
type SemanticToken struct {
	Line, Char, Length int
	Type                int
}

// SemanticTokens classifies every template expression identifier as a
// prop, a setup binding, or unresolved, per spec.md §4.J ("semantic
// tokens distinguish props from local refs from unresolved identifiers").
// Unresolved identifiers are left untokenized (no LSP token type fits
// "unknown"; diagnostics already flag them via vue/no-unknown-identifier).
func (d *Document) SemanticTokens() []SemanticToken {
	if d.descriptor == nil || d.descriptor.TemplateBlock == nil || d.root == nil || d.model == nil {
		return nil
	}
	tplStart := blockContentStart(d.Text, d.descriptor.TemplateBlock)
	var toks []SemanticToken
	template.Walk(d.root.Children, func(node template.Node, path []template.PathEntry) {
		interp, ok := node.(*template.Interpolation)
		if !ok || interp.Expression == nil {
			return
		}
		expr := interp.Expression
		for _, name := range identifiersIn(expr.Content) {
			b, known := d.model.Bindings[name]
			if !known {
				continue
			}
			tt := tokVariable
			if b.Type.String() == "Props" || b.Type.String() == "PropsAliased" {
				tt = tokProperty
			}
			for _, occ := range findIdentifierOccurrences(expr.Content, name) {
				abs := tplStart + expr.Loc.Span.Start + occ
				pos := PositionAt(d.Text, abs)
				toks = append(toks, SemanticToken{Line: pos.Line, Char: pos.Character, Length: len(name), Type: tt})
			}
		}
	})
	return toks
}

func identifiersIn(expr string) []string {
	seen := map[string]bool{}
	var out []string
	i := 0
	for i < len(expr) {
		if !isIdentByte(expr[i]) || (expr[i] >= '0' && expr[i] <= '9') {
			i++
			continue
		}
		start := i
		for i < len(expr) && isIdentByte(expr[i]) {
			i++
		}
		name := expr[start:i]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
