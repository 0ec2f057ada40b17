package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/sfc"
)

// setupLifecycleAndReactivityCalls are callees that are only valid inside a
// script-setup context (spec.md §4.D: calling these at the top level of a
// plain, non-setup <script> is a setup-context violation).
var setupLifecycleAndReactivityCalls = map[string]bool{
	"onMounted": true, "onUpdated": true, "onUnmounted": true,
	"onBeforeMount": true, "onBeforeUpdate": true, "onBeforeUnmount": true,
	"onErrorCaptured": true, "onActivated": true, "onDeactivated": true,
	"watch": true, "watchEffect": true, "provide": true, "inject": true,
}

func sfcSpanOf(n *sitter.Node) sfc.Span {
	if n == nil {
		return sfc.Span{}
	}
	return sfc.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// bindName records a binding either into the model's top-level table (the
// common case for script/script-setup top-level declarations) or into a
// nested scope's table when scope isn't the Module scope.
func bindName(m *croquis.Model, scope croquis.ScopeID, name string, typ croquis.BindingType, span sfc.Span) {
	b := &croquis.Binding{Name: name, Type: typ, Span: span}
	if scope == m.ModuleScopeID() || scope == croquis.NoScope {
		m.Bindings[name] = b
		return
	}
	if s := m.Scope(scope); s != nil {
		if s.Bindings == nil {
			s.Bindings = make(map[string]*croquis.Binding)
		}
		s.Bindings[name] = b
	}
}

// Analyze parses a <script>/<script setup> block's source with the
// tree-sitter grammar selected by lang and folds every top-level statement
// into m. isSetup distinguishes script-setup semantics (defineProps/
// defineEmits visible, lifecycle hooks valid at top level, non-default
// exports forbidden) from a plain <script> block (spec.md §4.D).
func Analyze(m *croquis.Model, source, lang string, isSetup bool) error {
	tree, err := parseSource(source, lang)
	if err != nil {
		return err
	}
	defer tree.Close()

	src := []byte(source)
	root := tree.RootNode()

	scopeKind := croquis.NonScriptSetupScope
	if isSetup {
		scopeKind = croquis.ScriptSetupScope
	}
	scope := m.PushScope(scopeKind, m.ModuleScopeID())
	m.Scope(scope).Span = sfcSpanOf(root)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		handleTopLevelStatement(m, m.ModuleScopeID(), stmt, src, isSetup)
	}
	scanLossPatterns(m, root, src)
	return nil
}

func handleTopLevelStatement(m *croquis.Model, scope croquis.ScopeID, node *sitter.Node, src []byte, isSetup bool) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "import_statement":
		handleImport(m, scope, node, src)

	case "lexical_declaration", "variable_declaration":
		handleDeclaration(m, scope, node, src, isSetup)

	case "function_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			bindName(m, scope, text(name, src), croquis.SetupConst, sfcSpanOf(node))
		}

	case "class_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			bindName(m, scope, text(name, src), croquis.SetupConst, sfcSpanOf(node))
		}

	case "export_statement":
		handleExport(m, scope, node, src, isSetup)

	case "interface_declaration", "type_alias_declaration":
		// Bare (non-exported) type declarations bind no runtime identifier
		// and are invisible to the template; nothing to record.

	case "expression_statement":
		if call := findFirst(node, "call_expression"); call != nil {
			handleTopLevelCall(m, scope, call, src, isSetup)
		}

	default:
		// Statements with no bearing on bindings/reactivity/macros
		// (if/for/try/...) at the top level of a script block are rare
		// and out of scope for this mini-parser (spec.md §4.D: "NOT a
		// general static analyzer").
	}
}

// handleTopLevelCall records setup-context violations and bare macro calls
// (defineExpose(...), defineOptions(...)) that aren't bound to a variable.
func handleTopLevelCall(m *croquis.Model, scope croquis.ScopeID, call *sitter.Node, src []byte, isSetup bool) {
	callee := callCallee(call, src)
	if callee == "" {
		return
	}
	if isMacroCall(callee) {
		recordMacroCall(m, scope, callee, call, src)
		return
	}
	if !isSetup && setupLifecycleAndReactivityCalls[callee] {
		m.Violations = append(m.Violations, croquis.SetupContextViolation{
			Callee: callee,
			Span:   sfcSpanOf(call),
		})
	}
}

// handleExport records invalid script-setup exports (spec.md §4.D: named/
// default exports are not permitted from a <script setup> block) and
// re-dispatches the wrapped declaration for binding purposes either way —
// `export const x = ...` still declares `x` in a plain <script> block.
func handleExport(m *croquis.Model, scope croquis.ScopeID, node *sitter.Node, src []byte, isSetup bool) {
	if t := findFirst(node, "type_alias_declaration"); t != nil {
		if name := t.ChildByFieldName("name"); name != nil {
			m.TypeExports = append(m.TypeExports, croquis.TypeExport{Name: text(name, src), Span: sfcSpanOf(node)})
		}
		return
	}
	if t := findFirst(node, "interface_declaration"); t != nil {
		if name := t.ChildByFieldName("name"); name != nil {
			m.TypeExports = append(m.TypeExports, croquis.TypeExport{Name: text(name, src), Span: sfcSpanOf(node)})
		}
		return
	}

	isDefault := strings.Contains(text(node, src)[:min(len(text(node, src)), 24)], "default")
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "lexical_declaration", "variable_declaration":
			handleDeclaration(m, scope, child, src, isSetup)
			if isSetup {
				for _, d := range findAll(child, "variable_declarator") {
					if n := d.ChildByFieldName("name"); n != nil && n.Type() == "identifier" {
						m.InvalidExports = append(m.InvalidExports, croquis.InvalidExport{
							Name: text(n, src), Kind: croquis.ExportValue, Span: sfcSpanOf(node),
						})
					}
				}
			}
		case "function_declaration", "class_declaration":
			handleTopLevelStatement(m, scope, child, src, isSetup)
			if isSetup {
				kind := croquis.ExportFunction
				if child.Type() == "class_declaration" {
					kind = croquis.ExportClass
				}
				name := ""
				if n := child.ChildByFieldName("name"); n != nil {
					name = text(n, src)
				}
				m.InvalidExports = append(m.InvalidExports, croquis.InvalidExport{Name: name, Kind: kind, Span: sfcSpanOf(node)})
			}
		default:
			if isSetup && isDefault {
				m.InvalidExports = append(m.InvalidExports, croquis.InvalidExport{Kind: croquis.ExportDefault, Span: sfcSpanOf(node)})
			}
		}
	}
}
