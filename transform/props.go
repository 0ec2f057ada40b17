package transform

import "github.com/vizehq/vize/template"

// findDirective returns the first directive named name on el, or nil.
func findDirective(el *template.Element, name string) *template.Directive {
	for _, p := range el.Props {
		if d, ok := p.(*template.Directive); ok && d.Name == name {
			return d
		}
	}
	return nil
}

// removeDirective returns el.Props with the first directive named name
// removed.
func removeDirective(props []template.PropNode, name string) []template.PropNode {
	out := make([]template.PropNode, 0, len(props))
	removed := false
	for _, p := range props {
		if !removed {
			if d, ok := p.(*template.Directive); ok && d.Name == name {
				removed = true
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// isWhitespaceText reports whether node is a Text node containing only
// whitespace — v-if/v-else-if/v-else chains skip these the same way
// eval_core.go's chain-walk skips non-element nodes.
func isWhitespaceText(n template.Node) bool {
	t, ok := n.(*template.Text)
	if !ok {
		return false
	}
	for _, r := range t.Content {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func keyOf(el *template.Element) (string, bool) {
	for _, p := range el.Props {
		switch a := p.(type) {
		case *template.Attribute:
			if a.Name == "key" && a.Value != nil {
				return *a.Value, true
			}
		case *template.Directive:
			if a.Name == "bind" && a.Arg != nil && a.Arg.Content == "key" && a.Exp != nil {
				return a.Exp.Content, true
			}
		}
	}
	return "", false
}
