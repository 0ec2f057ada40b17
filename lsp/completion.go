package lsp

import "github.com/vizehq/vize/template"

// CompletionItemKind mirrors the subset of LSP's CompletionItemKind this
// server produces.
type CompletionItemKind int

const (
	KindVariable CompletionItemKind = 6
	KindField    CompletionItemKind = 5
	KindEvent    CompletionItemKind = 23
)

// CompletionItem is one entry of a textDocument/completion response.
type CompletionItem struct {
	Label  string             `json:"label"`
	Kind   CompletionItemKind `json:"kind"`
	Detail string             `json:"detail,omitempty"`
}

// Completion lists every in-scope script binding plus declared emits,
// per spec.md §4.J ("template expression position → every binding
// reachable from the enclosing scope chain, plus $event inside an @
// handler"). It does not filter by offset or scope: every top-level script
// binding is offered, and v-for aliases (kept in their own VFor scopes,
// not in Model.Bindings) are not offered.
func (d *Document) Completion(offset int) []CompletionItem {
	if d.model == nil {
		return nil
	}
	var items []CompletionItem
	for name, b := range d.model.Bindings {
		items = append(items, CompletionItem{Label: name, Kind: KindVariable, Detail: b.Type.String()})
	}
	for _, e := range d.model.Emits() {
		items = append(items, CompletionItem{Label: e.Name, Kind: KindEvent, Detail: "emit"})
	}
	if d.inEventHandler(offset) {
		items = append(items, CompletionItem{Label: "$event", Kind: KindVariable, Detail: "DOM event"})
	}
	return items
}

// inEventHandler reports whether offset falls inside an `@`/`v-on`
// directive's expression.
func (d *Document) inEventHandler(offset int) bool {
	if d.descriptor == nil || d.descriptor.TemplateBlock == nil || d.root == nil {
		return false
	}
	tplStart := blockContentStart(d.Text, d.descriptor.TemplateBlock)
	local := offset - tplStart
	found := false
	template.Walk(d.root.Children, func(node template.Node, path []template.PathEntry) {
		if found {
			return
		}
		el, ok := node.(*template.Element)
		if !ok {
			return
		}
		for _, p := range el.Props {
			dir, ok := p.(*template.Directive)
			if ok && dir.Name == "on" && dir.Exp != nil && withinSpan(dir.Exp.Loc, local) {
				found = true
			}
		}
	})
	return found
}
