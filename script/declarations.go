package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vizehq/vize/croquis"
)

func declarationKeyword(node *sitter.Node, src []byte) string {
	t := text(node, src)
	switch {
	case strings.HasPrefix(t, "const"):
		return "const"
	case strings.HasPrefix(t, "let"):
		return "let"
	default:
		return "var"
	}
}

// handleDeclaration folds one const/let/var statement's declarators into
// bindings, classifying each by its initializer shape: a reactivity-API
// call, a compiler macro call, a literal, or a plain expression (spec.md
// §3's BindingType table).
func handleDeclaration(m *croquis.Model, scope croquis.ScopeID, node *sitter.Node, src []byte, isSetup bool) {
	keyword := declarationKeyword(node, src)
	for _, decl := range findAll(node, "variable_declarator") {
		nameNode := decl.ChildByFieldName("name")
		valueNode := decl.ChildByFieldName("value")
		if nameNode == nil {
			continue
		}

		var macroCallee string
		if valueNode != nil && valueNode.Type() == "call_expression" {
			if callee := callCallee(valueNode, src); isMacroCall(callee) {
				macroCallee = callee
				recordMacroCall(m, scope, callee, valueNode, src)
			}
		}

		switch nameNode.Type() {
		case "identifier":
			name := text(nameNode, src)
			bindName(m, scope, name, classifySimple(keyword, valueNode, src), sfcSpanOf(decl))
			if valueNode != nil && valueNode.Type() == "call_expression" {
				recordReactivitySource(m, name, callCallee(valueNode, src), src)
				switch callCallee(valueNode, src) {
				case "ref", "computed":
					bindName(m, scope, name, croquis.SetupRef, sfcSpanOf(decl))
				case "reactive":
					bindName(m, scope, name, croquis.SetupReactiveConst, sfcSpanOf(decl))
				case "toRef":
					bindName(m, scope, name, croquis.SetupMaybeRef, sfcSpanOf(decl))
				}
				if macroCallee == "defineModel" {
					// defineModel's return binds a ref, not a plain const.
					bindName(m, scope, name, croquis.SetupRef, sfcSpanOf(decl))
					m.Reactivity.Sources = append(m.Reactivity.Sources, croquis.ReactivitySource{Name: name, Kind: croquis.Ref})
				}
			}

		case "object_pattern", "array_pattern":
			handleDestructure(m, scope, nameNode, valueNode, src)
		}
	}
}

func classifySimple(keyword string, value *sitter.Node, src []byte) croquis.BindingType {
	if value == nil {
		return croquis.SetupLet
	}
	if keyword != "const" {
		return croquis.SetupLet
	}
	switch value.Type() {
	case "number", "string", "true", "false", "null", "template_string":
		return croquis.LiteralConst
	default:
		return croquis.SetupConst
	}
}

func recordReactivitySource(m *croquis.Model, name, callee string, src []byte) {
	if kind, ok := vueReactivityExports[callee]; ok {
		m.Reactivity.Sources = append(m.Reactivity.Sources, croquis.ReactivitySource{Name: name, Kind: kind})
	}
}

// handleDestructure binds each pattern element and, when the right-hand
// side is a reactive() call or a tracked ref/reactive source, records a
// ReactivityLoss per spec.md §4.D / §8 scenario 6. Destructuring
// defineProps(...) or toRefs(...) is sanctioned and records no loss.
func handleDestructure(m *croquis.Model, scope croquis.ScopeID, pattern, value *sitter.Node, src []byte) {
	sourceCallee := callCallee(value, src)
	isPropsMacro := sourceCallee == "defineProps"
	isToRefs := sourceCallee == "toRefs"
	isKnownReactive := sourceCallee == "reactive"

	var sourceName string
	if value != nil && value.Type() == "identifier" {
		sourceName = text(value, src)
	}

	var keys []string
	for _, prop := range namedChildren(pattern) {
		var key, local string
		switch prop.Type() {
		case "shorthand_property_identifier_pattern", "identifier":
			key = text(prop, src)
			local = key
		case "pair_pattern":
			if k := prop.ChildByFieldName("key"); k != nil {
				key = strings.Trim(text(k, src), `'"`)
			}
			if v := prop.ChildByFieldName("value"); v != nil {
				local = text(v, src)
			}
		default:
			continue
		}
		if local == "" {
			continue
		}
		keys = append(keys, key)

		typ := croquis.SetupConst
		if isPropsMacro {
			typ = croquis.PropsAliased
		}
		b := &croquis.Binding{Name: local, Type: typ, Span: sfcSpanOf(prop)}
		if isPropsMacro {
			b.AliasOf = key
		}
		bindNameDirect(m, scope, b)
	}

	lossKind, isLoss := croquis.ReactiveDestructure, false
	switch {
	case isPropsMacro, isToRefs:
		// Sanctioned destructure patterns — defineProps destructure is
		// compiler-transformed back into `__props.foo` access, and
		// toRefs(...) already wraps each value in its own ref.
	case sourceName != "" && sourceKind(m, sourceName) == refKind:
		lossKind, isLoss = croquis.RefValueDestructure, true
	case isKnownReactive || (sourceName != "" && m.IsReactive(sourceName)):
		lossKind, isLoss = croquis.ReactiveDestructure, true
	}
	if isLoss {
		m.Reactivity.Losses = append(m.Reactivity.Losses, croquis.Loss{
			Kind:             lossKind,
			Span:             sfcSpanOf(pattern),
			SourceName:       sourceName,
			DestructuredKeys: keys,
		})
	}
}

type reactivityKindClass int

const (
	noKind reactivityKindClass = iota
	refKind
	reactiveKind
)

func sourceKind(m *croquis.Model, name string) reactivityKindClass {
	for _, s := range m.Reactivity.Sources {
		if s.Name != name {
			continue
		}
		switch s.Kind {
		case croquis.Ref, croquis.ShallowRef, croquis.Computed, croquis.ToRef:
			return refKind
		case croquis.Reactive:
			return reactiveKind
		}
	}
	return noKind
}

func bindNameDirect(m *croquis.Model, scope croquis.ScopeID, b *croquis.Binding) {
	if scope == m.ModuleScopeID() || scope == croquis.NoScope {
		m.Bindings[b.Name] = b
		return
	}
	if s := m.Scope(scope); s != nil {
		if s.Bindings == nil {
			s.Bindings = make(map[string]*croquis.Binding)
		}
		s.Bindings[b.Name] = b
	}
}
