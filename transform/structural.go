package transform

import (
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// coalesceConditionals is pass 1 (spec.md §4.F.1). It scans children
// left-to-right the way eval_core.go's evaluate loop scans nodes[i:] for a
// v-else-if/v-else chain, but builds an If node instead of evaluating.
func coalesceConditionals(children []template.Node, diags *[]*Error) []template.Node {
	out := make([]template.Node, 0, len(children))
	i := 0
	for i < len(children) {
		el, ok := children[i].(*template.Element)
		if !ok {
			out = append(out, children[i])
			i++
			continue
		}
		if d := findDirective(el, "if"); d != nil {
			ifNode := &template.If{Loc: el.Loc}
			branchKeys := map[string]bool{}
			addBranch := func(cond *template.Expression, e *template.Element, isTemplate bool) {
				e.Props = removeDirective(e.Props, "if")
				e.Props = removeDirective(e.Props, "else-if")
				e.Props = removeDirective(e.Props, "else")
				branch := &template.IfBranch{Condition: cond, Children: e.Children, Loc: e.Loc, IsTemplateIf: isTemplate}
				if k, has := keyOf(e); has {
					if branchKeys[k] {
						*diags = append(*diags, &Error{Code: ErrIfSameKey, Span: sfcSpan(e)})
					}
					branchKeys[k] = true
				}
				ifNode.Branches = append(ifNode.Branches, branch)
			}
			addBranch(d.Exp, el, el.TagKind == template.TemplateTag)
			j := i + 1
			for j < len(children) {
				if isWhitespaceText(children[j]) || isCommentNode(children[j]) {
					j++
					continue
				}
				nextEl, ok := children[j].(*template.Element)
				if !ok {
					break
				}
				if d2 := findDirective(nextEl, "else-if"); d2 != nil {
					addBranch(d2.Exp, nextEl, nextEl.TagKind == template.TemplateTag)
					j++
					continue
				}
				if findDirective(nextEl, "else") != nil {
					addBranch(nil, nextEl, nextEl.TagKind == template.TemplateTag)
					j++
				}
				break
			}
			out = append(out, ifNode)
			i = j
			continue
		}
		if findDirective(el, "else-if") != nil || findDirective(el, "else") != nil {
			*diags = append(*diags, &Error{Code: ErrElseNoAdjacentIf, Span: sfcSpan(el)})
			i++
			continue
		}
		out = append(out, el)
		i++
	}
	return out
}

func isCommentNode(n template.Node) bool {
	_, ok := n.(*template.Comment)
	return ok
}

func sfcSpan(n template.Node) sfc.Span {
	return n.Location().Span
}
