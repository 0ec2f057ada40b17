package transform

import (
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
)

// Options configures a Run (spec.md §4.F / §6's --hoist-static,
// --cache-handlers, render-mode flags).
type Options struct {
	HoistStatic   bool
	CacheHandlers bool
	NonInline     bool // function-mode render: prefix setup bindings via $setup. instead of _unref()
}

// Result is everything codegen needs out of a transform Run.
type Result struct {
	Root    *template.Root
	Helpers *HelperSet
	Diags   []*Error
}

// Run applies the nine passes to root, consulting m (the Croquis model
// already built from the script block) for identifier resolution. Passes
// 1-2 run over the whole tree first, then 3/4/6/7/8/9 in one walk, and
// static hoisting (pass 5) runs last when enabled. m.IndexTemplate is invoked internally once the AST is
// structurally final (after passes 1-2 restructure If/For), since it is
// the single authoritative builder of the template scope tree.
func Run(root *template.Root, m *croquis.Model, opts Options) *Result {
	diags := &[]*Error{}

	root.Children = applyStructuralPasses(root.Children, diags)

	m.IndexTemplate(root.Children)

	helpers := NewHelperSet()
	cacheIndex := 0
	walkAndTransform(root.Children, m, opts, helpers, &cacheIndex, map[string]bool{})

	if opts.HoistStatic {
		HoistStatics(root)
		helpers.Add("createElementVNode")
	}

	return &Result{Root: root, Helpers: helpers, Diags: *diags}
}

// applyStructuralPasses runs passes 1 (v-if/else-if/else coalescing) and 2
// (v-for rewrite) over children and recurses into every nesting level:
// surviving Elements' own children, each If branch's children, and each
// For's children (to support v-if/v-for nested arbitrarily deep).
func applyStructuralPasses(children []template.Node, diags *[]*Error) []template.Node {
	children = coalesceConditionals(children, diags)
	children = rewriteFor(children, diags)
	for _, c := range children {
		switch n := c.(type) {
		case *template.Element:
			n.Children = applyStructuralPasses(n.Children, diags)
		case *template.If:
			for _, b := range n.Branches {
				b.Children = applyStructuralPasses(b.Children, diags)
			}
		case *template.For:
			n.Children = applyStructuralPasses(n.Children, diags)
		}
	}
	return children
}

// walkAndTransform applies passes 3/4/6/7/8/9 to every Element, threading
// locally-bound names (v-for aliases, v-slot props, $event) down through
// nested scopes for pass 8's priority-1 rule.
func walkAndTransform(children []template.Node, m *croquis.Model, opts Options, helpers *HelperSet, cacheIndex *int, localNames map[string]bool) {
	for _, node := range children {
		switch n := node.(type) {
		case *template.Element:
			if findDirective(n, "pre") != nil {
				n.Props = removeDirective(n.Props, "pre")
				continue
			}
			transformElement(n, m, opts, helpers, cacheIndex, localNames)
			walkAndTransform(n.Children, m, opts, helpers, cacheIndex, localNames)

		case *template.Interpolation:
			normalizeExpr(n.Expression, m, opts, localNames)
			helpers.Add("toDisplayString")

		case *template.If:
			helpers.Add("createCommentVNode")
			for _, b := range n.Branches {
				if b.Condition != nil {
					normalizeExpr(b.Condition, m, opts, localNames)
				}
				walkAndTransform(b.Children, m, opts, helpers, cacheIndex, localNames)
			}

		case *template.For:
			helpers.Add("renderList")
			helpers.Add("Fragment")
			child := withLocals(localNames, n.ValueAlias, n.KeyAlias, n.IndexAlias)
			if n.Source != nil {
				normalizeExpr(n.Source, m, opts, localNames)
			}
			walkAndTransform(n.Children, m, opts, helpers, cacheIndex, child)
		}
	}
}

func transformElement(el *template.Element, m *croquis.Model, opts Options, helpers *HelperSet, cacheIndex *int, localNames map[string]bool) {
	expandVModel(el)
	if el.TagKind == template.Component {
		helpers.Add("resolveComponent")
		helpers.Add("createVNode")
	} else {
		helpers.Add("createElementVNode")
	}

	elLocals := localNames
	if slotArg := findDirective(el, "slot"); slotArg != nil && slotArg.Exp != nil {
		elLocals = withLocals(localNames, slotArg.Exp.Content)
	}

	for _, p := range el.Props {
		d, ok := p.(*template.Directive)
		if !ok {
			continue
		}
		handlerLocals := elLocals
		if d.Name == "on" {
			handlerLocals = withLocals(elLocals, "$event")
			helpers.Add("withModifiers")
		}
		if d.Arg != nil && !d.Arg.IsStatic {
			normalizeExpr(d.Arg, m, opts, elLocals)
		}
		if d.Exp != nil {
			normalizeExpr(d.Exp, m, opts, handlerLocals)
		}
	}

	computePatchFlags(el)
	if opts.CacheHandlers {
		CacheHandlers(el, cacheIndex)
	}
}

// normalizeExpr runs pass 3 (TS-cast strip) then pass 8 (identifier
// prefixing) over a single expression.
func normalizeExpr(expr *template.Expression, m *croquis.Model, opts Options, localNames map[string]bool) {
	if expr == nil || expr.Kind != template.SimpleExpr || expr.IsStatic {
		return
	}
	expr.Content = stripExpressionTypeSyntax(expr.Content)
	PrefixIdentifiers(expr, m, localNames, opts.NonInline)
}

func withLocals(base map[string]bool, names ...string) map[string]bool {
	out := make(map[string]bool, len(base)+len(names))
	for k := range base {
		out[k] = true
	}
	for _, n := range names {
		if n != "" {
			out[n] = true
		}
	}
	return out
}
