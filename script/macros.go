package script

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vizehq/vize/croquis"
)

var macroNames = map[string]bool{
	"defineProps": true, "defineEmits": true, "defineModel": true,
	"withDefaults": true, "defineExpose": true, "defineOptions": true,
	"defineSlots": true,
}

func isMacroCall(callee string) bool { return macroNames[callee] }

func recordMacroCall(m *croquis.Model, scope croquis.ScopeID, callee string, call *sitter.Node, src []byte) {
	m.Macros.MacroCalls = append(m.Macros.MacroCalls, croquis.MacroCall{Macro: callee, Span: sfcSpanOf(call)})

	switch callee {
	case "defineProps":
		parseDefineProps(m, call, src)
	case "withDefaults":
		// withDefaults(defineProps<...>(), { a: 1 }) — the inner defineProps
		// call supplies the prop names; the second argument supplies
		// per-prop defaults keyed by name.
		args := callArgs(call)
		if len(args) == 0 {
			return
		}
		if inner := findFirst(args[0], "call_expression"); inner != nil && callCallee(inner, src) == "defineProps" {
			parseDefineProps(m, inner, src)
		}
		if len(args) > 1 {
			applyDefaults(m, args[1], src)
		}
	case "defineEmits":
		parseDefineEmits(m, call, src)
	case "defineModel":
		parseDefineModel(m, scope, call, src)
	}
}

// parseDefineProps reads defineProps's runtime argument (an object/array
// literal) when present; a type-only `defineProps<{ foo: string }>()` call
// carries its shape in a type_arguments node instead, which this
// mini-parser does not resolve (spec.md §4.D scopes out full TS type
// inference) — PropDefinitions simply stay empty in that case.
func parseDefineProps(m *croquis.Model, call *sitter.Node, src []byte) {
	args := callArgs(call)
	if len(args) == 0 {
		return
	}
	switch args[0].Type() {
	case "object":
		for _, pair := range namedChildren(args[0]) {
			name, required := "", false
			switch pair.Type() {
			case "pair":
				if k := pair.ChildByFieldName("key"); k != nil {
					name = strings.Trim(text(k, src), `'"`)
				}
				if v := pair.ChildByFieldName("value"); v != nil {
					required = strings.Contains(text(v, src), "required: true") || strings.Contains(text(v, src), "required:true")
				}
			case "shorthand_property_identifier", "property_identifier":
				name = text(pair, src)
			}
			if name != "" {
				m.Macros.Props = append(m.Macros.Props, croquis.PropDefinition{Name: name, Required: required})
				m.Bindings[name] = &croquis.Binding{Name: name, Type: croquis.Props, Span: sfcSpanOf(pair)}
			}
		}
	case "array":
		for _, el := range namedChildren(args[0]) {
			name := strings.Trim(text(el, src), `'"`)
			if name != "" {
				m.Macros.Props = append(m.Macros.Props, croquis.PropDefinition{Name: name})
			}
		}
	}
}

func applyDefaults(m *croquis.Model, defaultsObj *sitter.Node, src []byte) {
	for _, pair := range namedChildren(defaultsObj) {
		if pair.Type() != "pair" {
			continue
		}
		k := pair.ChildByFieldName("key")
		v := pair.ChildByFieldName("value")
		if k == nil || v == nil {
			continue
		}
		name := strings.Trim(text(k, src), `'"`)
		for i := range m.Macros.Props {
			if m.Macros.Props[i].Name == name {
				m.Macros.Props[i].Default = text(v, src)
			}
		}
	}
}

func parseDefineEmits(m *croquis.Model, call *sitter.Node, src []byte) {
	args := callArgs(call)
	if len(args) == 0 || args[0].Type() != "array" {
		return
	}
	for _, el := range namedChildren(args[0]) {
		name := strings.Trim(text(el, src), `'"`)
		if name != "" {
			m.Macros.Emits = append(m.Macros.Emits, croquis.EmitDefinition{Name: name})
		}
	}
}

func parseDefineModel(m *croquis.Model, scope croquis.ScopeID, call *sitter.Node, src []byte) {
	name := "modelValue"
	args := callArgs(call)
	if len(args) > 0 && (args[0].Type() == "string" || args[0].Type() == "string_fragment") {
		name = strings.Trim(text(args[0], src), `'"`)
	}
	m.Macros.Models = append(m.Macros.Models, croquis.ModelDefinition{Name: name})
}
