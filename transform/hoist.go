package transform

import "github.com/vizehq/vize/template"

// HoistStatics is pass 5 (spec.md §4.F.5). It also honors v-once, proven by
// the teacher's evaluator-level `v-once` support: a v-once subtree hoists
// unconditionally regardless of static-ness (SPEC_FULL's supplemented
// features section).
func HoistStatics(root *template.Root) {
	root.Children = hoistChildren(root.Children, root, true)
}

func hoistChildren(children []template.Node, root *template.Root, isRootLevel bool) []template.Node {
	out := make([]template.Node, 0, len(children))
	for _, c := range children {
		el, isEl := c.(*template.Element)
		if !isEl {
			out = append(out, c)
			continue
		}
		el.Children = hoistChildren(el.Children, root, false)

		if findDirective(el, "once") != nil {
			el.Props = removeDirective(el.Props, "once")
			idx := len(root.Hoists)
			root.Hoists = append(root.Hoists, el)
			out = append(out, &template.Hoisted{Index: idx, Loc: el.Loc})
			continue
		}

		if isFullyStatic(el) {
			if isRootLevel {
				hoistPropsOnly(el, root)
				out = append(out, el)
			} else {
				idx := len(root.Hoists)
				root.Hoists = append(root.Hoists, el)
				out = append(out, &template.Hoisted{Index: idx, Loc: el.Loc})
			}
			continue
		}
		if allAttrsStatic(el) {
			hoistPropsOnly(el, root)
		}
		out = append(out, el)
	}
	return out
}

// isFullyStatic implements spec.md §4.F.5's definition: a text or comment
// node on its own is static; an element is static iff it's a plain HTML
// tag with no directives, no ref attribute, and children that are all text
// (nested elements and comment children are excluded, so such a container
// never gets a full hoist — only a props-only hoist).
func isFullyStatic(n template.Node) bool {
	switch v := n.(type) {
	case *template.Text, *template.Comment:
		return true
	case *template.Element:
		if v.TagKind != template.HTMLElement {
			return false
		}
		for _, p := range v.Props {
			if _, isDir := p.(*template.Directive); isDir {
				return false
			}
			if a, ok := p.(*template.Attribute); ok && a.Name == "ref" {
				return false
			}
		}
		for _, c := range v.Children {
			switch c.(type) {
			case *template.Element, *template.Comment:
				return false
			}
			if !isFullyStatic(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func allAttrsStatic(el *template.Element) bool {
	if len(el.Props) == 0 {
		return false
	}
	for _, p := range el.Props {
		if _, ok := p.(*template.Directive); ok {
			return false
		}
	}
	return true
}

// hoistPropsOnly stores el's static props object in root.Hoists and
// records the index on the element for codegen to reference (spec.md
// §4.F.5: "gets its props object hoisted and the element retains a
// hoisted_props_index"). The stored placeholder is a bare *Element
// carrying only Props — codegen reads .Props off it when emitting the
// hoisted object literal.
func hoistPropsOnly(el *template.Element, root *template.Root) {
	if el.HasHoistedProps {
		return
	}
	idx := len(root.Hoists)
	root.Hoists = append(root.Hoists, &template.Element{Props: el.Props, Loc: el.Loc})
	el.HoistedPropsIndex = idx
	el.HasHoistedProps = true
}
