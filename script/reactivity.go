package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vizehq/vize/croquis"
)

// scanLossPatterns catches the three reactivity-loss shapes that aren't
// tied to a destructuring pattern: snapshotting a ref's `.value` into a new
// binding (RefValueExtract), reassigning a whole reactive() object
// (ReactiveReassign), and spreading a reactive() object (ReactiveSpread).
// Run once over the full script tree after top-level bindings are known,
// since these checks need m.Reactivity.Sources populated first.
func scanLossPatterns(m *croquis.Model, root *sitter.Node, src []byte) {
	for _, decl := range findAll(root, "variable_declarator") {
		value := decl.ChildByFieldName("value")
		if value == nil || value.Type() != "member_expression" {
			continue
		}
		obj := value.ChildByFieldName("object")
		prop := value.ChildByFieldName("property")
		if obj == nil || prop == nil || text(prop, src) != "value" || obj.Type() != "identifier" {
			continue
		}
		name := text(obj, src)
		if sourceKind(m, name) == refKind {
			m.Reactivity.Losses = append(m.Reactivity.Losses, croquis.Loss{
				Kind:       croquis.RefValueExtract,
				Span:       sfcSpanOf(decl),
				SourceName: name,
			})
		}
	}

	for _, assign := range findAll(root, "assignment_expression") {
		left := assign.ChildByFieldName("left")
		if left == nil || left.Type() != "identifier" {
			continue
		}
		name := text(left, src)
		if sourceKind(m, name) == reactiveKind {
			m.Reactivity.Losses = append(m.Reactivity.Losses, croquis.Loss{
				Kind:       croquis.ReactiveReassign,
				Span:       sfcSpanOf(assign),
				SourceName: name,
			})
		}
	}

	for _, spread := range findAll(root, "spread_element") {
		id := spread.NamedChild(0)
		if id == nil || id.Type() != "identifier" {
			continue
		}
		name := text(id, src)
		if sourceKind(m, name) == reactiveKind {
			m.Reactivity.Losses = append(m.Reactivity.Losses, croquis.Loss{
				Kind:       croquis.ReactiveSpread,
				Span:       sfcSpanOf(spread),
				SourceName: name,
			})
		}
	}
}
