package lint

import (
	"strings"

	"github.com/vizehq/vize/template"
)

// parseForExpr parses "lhs (in|of) rhs" the same way transform's v-for
// rewrite pass does (spec.md §4.F.2), duplicated here in miniature since
// lint walks the pre-transform tree and transform's parser is
// package-private.
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
		for _, p := range strings.Split(lhs[1:len(lhs)-1], ",") {
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

func findDirective(el *template.Element, name string) *template.Directive {
	for _, p := range el.Props {
		if d, ok := p.(*template.Directive); ok && d.Name == name {
			return d
		}
	}
	return nil
}

// RequireVForKey flags a v-for element with no :key/v-bind:key binding
// (spec.md §4.I structural: "missing :key in v-for").
var RequireVForKey = Rule{
	Name:            "vue/require-v-for-key",
	DefaultSeverity: Error,
	Check: func(node template.Node, ctx *Context) {
		el, ok := node.(*template.Element)
		if !ok {
			return
		}
		forDir := findDirective(el, "for")
		if forDir == nil {
			return
		}
		var keyDir *template.Directive
		for _, p := range el.Props {
			if d, ok := p.(*template.Directive); ok && d.Name == "bind" && d.Arg != nil && d.Arg.Content == "key" {
				keyDir = d
				break
			}
		}
		if keyDir == nil {
			ctx.ReportHelp(el, "v-for element is missing a :key binding",
				"add a :key bound to a stable, unique identifier")
		}
	},
}

// NoElseWithoutIf flags a v-else/v-else-if directive whose element isn't
// immediately preceded by a v-if/v-else-if sibling (spec.md §4.I
// structural: "v-else without v-if"). This runs over the raw parsed tree,
// before transform's structural-coalescing pass consumes the same chain
// into an If node.
var NoElseWithoutIf = Rule{
	Name:            "vue/no-else-without-if",
	DefaultSeverity: Error,
	Check: func(node template.Node, ctx *Context) {
		el, ok := node.(*template.Element)
		if !ok {
			return
		}
		if findDirective(el, "else") == nil && findDirective(el, "else-if") == nil {
			return
		}
		siblings := ctx.siblingsOf(el)
		idx := indexOf(siblings, el)
		if idx <= 0 {
			ctx.Report(el, "v-else/v-else-if has no preceding v-if sibling")
			return
		}
		prevEl, ok := prevElementSibling(siblings, idx)
		if !ok || (findDirective(prevEl, "if") == nil && findDirective(prevEl, "else-if") == nil) {
			ctx.Report(el, "v-else/v-else-if has no preceding v-if sibling")
		}
	},
}

// NoDuplicateRef flags two elements in the same template binding the same
// literal ref name (spec.md §4.I structural: "duplicate ref").
var NoDuplicateRef = Rule{
	Name:            "vue/no-duplicate-ref",
	DefaultSeverity: Warning,
	Check: func(node template.Node, ctx *Context) {
		el, ok := node.(*template.Element)
		if !ok {
			return
		}
		var refName string
		for _, p := range el.Props {
			switch v := p.(type) {
			case *template.Attribute:
				if v.Name == "ref" && v.Value != nil {
					refName = *v.Value
				}
			case *template.Directive:
				if v.Name == "bind" && v.Arg != nil && v.Arg.Content == "ref" && v.Exp != nil && v.Exp.IsStatic {
					refName = v.Exp.Content
				}
			}
		}
		if refName == "" {
			return
		}
		if ctx.seenRefs == nil {
			ctx.seenRefs = map[string]bool{}
		}
		if ctx.seenRefs[refName] {
			ctx.Report(el, "duplicate ref name \""+refName+"\"")
			return
		}
		ctx.seenRefs[refName] = true
	},
}

// NoUnknownIdentifier flags an interpolation expression (directive
// expressions are not checked) containing an identifier that is neither a
// Croquis binding, a v-for/v-slot local, nor a reserved template global (spec.md §4.I semantic: "unknown identifier
// in template given that the script provides a closed binding set").
var NoUnknownIdentifier = Rule{
	Name:            "vue/no-unknown-identifier",
	DefaultSeverity: Warning,
	Check: func(node template.Node, ctx *Context) {
		interp, ok := node.(*template.Interpolation)
		if !ok || interp.Expression == nil || interp.Expression.Kind != template.SimpleExpr {
			return
		}
		for _, ident := range identifiers(interp.Expression.Content) {
			if reservedTemplateGlobals[ident] {
				continue
			}
			if ctx.InScopeForVar(ident) {
				continue
			}
			if ctx.Model != nil {
				if _, bound := ctx.Model.Bindings[ident]; bound {
					continue
				}
			}
			ctx.Report(interp, "\""+ident+"\" is not defined in script scope")
		}
	},
}

var reservedTemplateGlobals = map[string]bool{
	"$event": true, "$slots": true, "$attrs": true, "$refs": true,
	"$emit": true, "$props": true, "$el": true, "$parent": true,
	"Math": true, "Object": true, "Array": true, "JSON": true,
	"true": true, "false": true, "null": true, "undefined": true,
}

func (c *Context) siblingsOf(el *template.Element) []template.Node {
	if len(c.Path) == 0 {
		return nil
	}
	last := c.Path[len(c.Path)-1]
	return *last.Parent
}

func indexOf(nodes []template.Node, target template.Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

func prevElementSibling(nodes []template.Node, idx int) (*template.Element, bool) {
	for i := idx - 1; i >= 0; i-- {
		switch n := nodes[i].(type) {
		case *template.Element:
			return n, true
		case *template.Text:
			continue
		default:
			return nil, false
		}
	}
	return nil, false
}
