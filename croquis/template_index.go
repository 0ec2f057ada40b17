package croquis

import (
	"strings"

	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// identifierPattern matches a bare JS identifier run; used to pull free
// identifiers out of a directive/interpolation expression's raw text
// without a full expression parser (the same scope the spec caps the
// mini-parser to in §4.D applies here: "NOT a general static analyzer").
func scanIdentifiers(expr string) []string {
	var out []string
	i := 0
	for i < len(expr) {
		c := expr[i]
		if isIdentStart(c) {
			start := i
			i++
			for i < len(expr) && isIdentChar(expr[i]) {
				i++
			}
			word := expr[start:i]
			if !jsKeywords[word] && !isPrecededByDot(expr, start) {
				out = append(out, word)
			}
			continue
		}
		i++
	}
	return out
}

func isPrecededByDot(expr string, start int) bool {
	j := start - 1
	for j >= 0 && (expr[j] == ' ' || expr[j] == '\t') {
		j--
	}
	return j >= 0 && expr[j] == '.'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

var jsKeywords = map[string]bool{
	"true": true, "false": true, "null": true, "undefined": true,
	"typeof": true, "in": true, "of": true, "new": true, "this": true,
	"void": true, "instanceof": true,
}

// IndexTemplate walks the template AST (post structural-coalescing, so If/
// For nodes already exist) and records one TemplateExprRef per referenced
// identifier, resolving each against the template-local scope chain (one
// VFor scope per For node; no v-slot or event-handler scopes are built
// here) and falling back to the script Bindings (spec.md §4.E point 2).
func (m *Model) IndexTemplate(children []template.Node) {
	m.walkChildren(children, m.ModuleScopeID(), "")
}

func (m *Model) walkChildren(children []template.Node, scope ScopeID, vifGuard string) {
	for _, node := range children {
		switch n := node.(type) {
		case *template.Element:
			elScope := scope
			for _, prop := range n.Props {
				if dir, ok := prop.(*template.Directive); ok {
					if dir.Exp != nil {
						m.recordExprRefs(dir.Exp.Content, dir.Exp.Loc.Span, elScope, vifGuard)
					}
					if dir.Arg != nil && !dir.Arg.IsStatic {
						m.recordExprRefs(dir.Arg.Content, dir.Arg.Loc.Span, elScope, vifGuard)
					}
				}
			}
			m.walkChildren(n.Children, elScope, vifGuard)

		case *template.Interpolation:
			m.recordExprRefs(n.Expression.Content, n.Expression.Loc.Span, scope, vifGuard)

		case *template.If:
			var conditions []string
			for _, branch := range n.Branches {
				if branch.Condition != nil {
					m.recordExprRefs(branch.Condition.Content, branch.Condition.Loc.Span, scope, vifGuard)
					conditions = append(conditions, branch.Condition.Content)
				}
				guard := vifGuard
				if len(conditions) > 0 {
					if guard != "" {
						guard += " && "
					}
					guard += strings.Join(conditions, " && ")
				}
				m.walkChildren(branch.Children, scope, guard)
			}

		case *template.For:
			forScope := m.PushScope(VForScope, scope)
			s := m.Scope(forScope)
			s.Bindings = map[string]*Binding{}
			for _, alias := range []string{n.ValueAlias, n.KeyAlias, n.IndexAlias} {
				if alias != "" {
					s.Bindings[alias] = &Binding{Name: alias, Type: SetupConst}
					s.VForAliases = append(s.VForAliases, alias)
				}
			}
			if n.Source != nil {
				m.recordExprRefs(n.Source.Content, n.Source.Loc.Span, scope, vifGuard)
			}
			m.walkChildren(n.Children, forScope, vifGuard)
		}
	}
}

// recordExprRefs records one TemplateExprRef per free identifier in expr.
func (m *Model) recordExprRefs(expr string, span sfc.Span, scope ScopeID, vifGuard string) {
	// Validate the expression compiles at all (catches malformed directive
	// expressions early) and cache the compiled program in m.Exprs.
	_, _ = m.Exprs.Compile(expr)

	for _, name := range scanIdentifiers(expr) {
		resolvedScope, _ := m.Lookup(scope, name)
		ref := TemplateExprRef{Name: name, Span: span, VIfGuard: vifGuard, ResolvedScope: NoScope}
		if resolvedScope != nil {
			ref.ResolvedScope = resolvedScope.ID
			ref.TemplateLocal = m.isTemplateLocalAncestor(resolvedScope.ID, scope)
		}
		m.TemplateExpressions = append(m.TemplateExpressions, ref)
	}
}

// isTemplateLocalAncestor reports whether resolved is a VFor/VSlot/
// EventHandler scope reachable by walking up from used (i.e. the
// identifier was bound by template structure rather than script).
func (m *Model) isTemplateLocalAncestor(resolved, used ScopeID) bool {
	scope := m.Scope(resolved)
	if scope == nil {
		return false
	}
	switch scope.Kind {
	case VForScope, VSlotScope, EventHandlerScope:
		return true
	default:
		return false
	}
}
