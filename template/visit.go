package template

// PathEntry identifies a node's position during a Walk: its parent slice
// and index within it, so a visitor can replace or remove the node in
// place without the node itself holding a parent pointer (spec.md §9:
// "AST nodes never hold parent pointers; a traversal carries a mutable
// path stack").
type PathEntry struct {
	Parent *[]Node
	Index  int
}

// Visitor is called for every node in a Walk, pre-order, with the current
// ancestor path (root-to-parent, excluding node itself).
type Visitor func(node Node, path []PathEntry)

// Walk traverses children in-order, depth-first, pre-order. It recurses
// into Element/If/For child slices directly; Text/Interpolation/Comment/
// Hoisted are leaves.
func Walk(children []Node, visit Visitor) {
	walk(children, nil, visit)
}

func walk(children []Node, path []PathEntry, visit Visitor) {
	for i := range children {
		node := children[i]
		visit(node, path)
		entry := PathEntry{Parent: &children, Index: i}
		childPath := append(append([]PathEntry(nil), path...), entry)

		switch n := node.(type) {
		case *Element:
			walk(n.Children, childPath, visit)
		case *If:
			for _, b := range n.Branches {
				walk(b.Children, childPath, visit)
			}
		case *For:
			walk(n.Children, childPath, visit)
		}
	}
}
