package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vizehq/vize/croquis"
)

// vueReactivityExports lists the subset of Vue's public API this mini-parser
// recognizes as reactivity-affecting (spec.md §4.D), matched by callee name;
// the import source is not checked. Every imported name, these included,
// binds as a plain ExternalModule identifier.
var vueReactivityExports = map[string]croquis.ReactivitySourceKind{
	"ref":        croquis.Ref,
	"shallowRef": croquis.ShallowRef,
	"reactive":   croquis.Reactive,
	"computed":   croquis.Computed,
	"readonly":   croquis.Readonly,
	"toRef":      croquis.ToRef,
	"toRefs":     croquis.ToRefs,
}

// handleImport records each imported binding as an ExternalModule binding.
// It does not attempt to resolve re-exports or aliasing chains across
// files — spec.md §4.D scopes this mini-parser to single-file analysis.
func handleImport(m *croquis.Model, scope croquis.ScopeID, node *sitter.Node, src []byte) {
	for _, spec := range findAll(node, "import_specifier") {
		nameNode := spec.ChildByFieldName("name")
		aliasNode := spec.ChildByFieldName("alias")
		local := aliasNode
		if local == nil {
			local = nameNode
		}
		if local == nil {
			continue
		}
		bindName(m, scope, text(local, src), croquis.ExternalModule, sfcSpanOf(node))
	}
	for _, ns := range findAll(node, "namespace_import") {
		if id := findFirst(ns, "identifier"); id != nil {
			bindName(m, scope, text(id, src), croquis.ExternalModule, sfcSpanOf(node))
		}
	}
	clause := findFirst(node, "import_clause")
	if clause != nil {
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			child := clause.NamedChild(i)
			if child != nil && child.Type() == "identifier" {
				bindName(m, scope, text(child, src), croquis.ExternalModule, sfcSpanOf(node))
			}
		}
	}
}
