package script

import sitter "github.com/smacker/go-tree-sitter"

// text returns the source slice a node spans.
func text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}

// namedChildren returns a node's named children as a slice, mirroring the
// ChildByFieldName/Child(i) access pattern viant-linager's extractIdentifiers
// uses, generalized to "give me all of them" rather than one field.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// findFirst walks n's subtree depth-first (iteratively, via an explicit
// stack — the same shape as extractIdentifiers's recursive-extraction
// loop) and returns the first descendant whose Type() is in types.
func findFirst(n *sitter.Node, types ...string) *sitter.Node {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	stack := []*sitter.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		if want[cur.Type()] {
			return cur
		}
		for i := int(cur.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, cur.Child(i))
		}
	}
	return nil
}

// findAll is findFirst's every-match variant, used to collect e.g. every
// import_specifier under an import_clause regardless of grammar-version
// field-name availability.
func findAll(n *sitter.Node, typ string) []*sitter.Node {
	var out []*sitter.Node
	stack := []*sitter.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		if cur.Type() == typ {
			out = append(out, cur)
		}
		for i := int(cur.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, cur.Child(i))
		}
	}
	return out
}

// callCallee returns the flat dotted name of a call_expression's callee
// ("ref", "Vue.ref", ...), or "" if the callee isn't a plain identifier or
// member chain of identifiers.
func callCallee(call *sitter.Node, src []byte) string {
	if call == nil || call.Type() != "call_expression" {
		return ""
	}
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	switch fn.Type() {
	case "identifier":
		return text(fn, src)
	case "member_expression":
		obj := fn.ChildByFieldName("object")
		prop := fn.ChildByFieldName("property")
		return text(obj, src) + "." + text(prop, src)
	default:
		return ""
	}
}

// callArgs returns a call_expression's argument nodes in order.
func callArgs(call *sitter.Node) []*sitter.Node {
	if call == nil {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	return namedChildren(args)
}
