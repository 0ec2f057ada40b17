package transform

import (
	"strings"

	"github.com/vizehq/vize/template"
)

// parseForExpr parses "lhs (in|of) rhs" where lhs is a bare identifier or
// a parenthesized 1-3 identifier tuple `(value, key, index)` (spec.md
// §4.F.2), generalized from the teacher's parseFor (eval_for.go), which
// only accepted 1 or 2 variables.
func parseForExpr(s string) (value, key, index, source string, ok bool) {
	s = strings.TrimSpace(s)
	sep := " in "
	idx := strings.Index(s, sep)
	if idx < 0 {
		sep = " of "
		idx = strings.Index(s, sep)
	}
	if idx < 0 {
		return "", "", "", "", false
	}
	lhs := strings.TrimSpace(s[:idx])
	rhs := strings.TrimSpace(s[idx+len(sep):])
	if rhs == "" {
		return "", "", "", "", false
	}

	var vars []string
	if strings.HasPrefix(lhs, "(") && strings.HasSuffix(lhs, ")") {
		inside := strings.TrimSpace(lhs[1 : len(lhs)-1])
		for _, p := range strings.Split(inside, ",") {
			vars = append(vars, strings.TrimSpace(p))
		}
	} else {
		vars = []string{lhs}
	}
	if len(vars) == 0 || vars[0] == "" || len(vars) > 3 {
		return "", "", "", "", false
	}
	value = vars[0]
	if len(vars) > 1 {
		key = vars[1]
	}
	if len(vars) > 2 {
		index = vars[2]
	}
	return value, key, index, rhs, true
}

// rewriteFor is pass 2 (spec.md §4.F.2): replace a v-for element with a For
// node wrapping the element (minus its v-for directive). It only rewrites
// AST shape; the VFor scope itself is opened later by
// croquis.Model.IndexTemplate, which is the single authoritative builder
// of the scope tree from the final (post-transform) AST.
func rewriteFor(children []template.Node, diags *[]*Error) []template.Node {
	out := make([]template.Node, 0, len(children))
	for _, child := range children {
		el, ok := child.(*template.Element)
		if !ok {
			out = append(out, child)
			continue
		}
		d := findDirective(el, "for")
		if d == nil {
			out = append(out, child)
			continue
		}
		if d.Exp == nil || d.Exp.Content == "" {
			*diags = append(*diags, &Error{Code: ErrForNoExpression, Span: sfcSpan(el)})
			continue
		}
		value, key, index, source, ok := parseForExpr(d.Exp.Content)
		if !ok {
			*diags = append(*diags, &Error{Code: ErrForNoExpression, Span: sfcSpan(el)})
			continue
		}
		el.Props = removeDirective(el.Props, "for")

		forNode := &template.For{
			Source:     template.NewSimpleExpression(source, false, d.Exp.Loc),
			ValueAlias: value,
			KeyAlias:   key,
			IndexAlias: index,
			Children:   []template.Node{el},
			Loc:        el.Loc,
		}
		out = append(out, forNode)
	}
	return out
}
