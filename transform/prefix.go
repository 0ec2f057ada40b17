package transform

import (
	"regexp"
	"strings"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
)

// identPattern matches one free-identifier run, reusing the same shape as
// croquis's scanIdentifiers scanner.
var identPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)

var jsReserved = map[string]bool{
	"true": true, "false": true, "null": true, "undefined": true,
	"typeof": true, "in": true, "of": true, "new": true, "this": true,
	"void": true, "instanceof": true,
}

// PrefixIdentifiers is pass 8 (spec.md §4.F.8 / §4.F.a): rewrite every free
// identifier in expr.Content to its canonical access path. localNames
// holds the template-local names bound by enclosing v-for aliases/v-slot
// props/`$event` (priority 1 — left unchanged); anything else is resolved
// against the script Bindings table (priority 2), falling back to
// `_ctx.n` (priority 3).
func PrefixIdentifiers(expr *template.Expression, m *croquis.Model, localNames map[string]bool, nonInline bool) {
	if expr == nil || expr.Kind != template.SimpleExpr {
		return
	}
	expr.Content = identPattern.ReplaceAllStringFunc(expr.Content, func(name string) string {
		if jsReserved[name] || isPropertyKey(expr.Content, name) {
			return name
		}
		if localNames[name] {
			return name
		}
		return canonicalAccess(m, name, nonInline)
	})
}

// isPropertyKey is a best-effort guard against rewriting member-expression
// property names (`foo.bar` — `bar` is not a free identifier). It does not
// attempt full JS parsing; directive expressions are kept intentionally
// simple per spec.md §4.D's scope cap.
func isPropertyKey(fullExpr, name string) bool {
	for _, idx := range identPattern.FindAllStringIndex(fullExpr, -1) {
		if fullExpr[idx[0]:idx[1]] != name {
			continue
		}
		before := strings.TrimRight(fullExpr[:idx[0]], " \t")
		if strings.HasSuffix(before, ".") {
			return true
		}
	}
	return false
}

// canonicalAccess resolves n per the priority list in spec.md §4.F.a point 2.
func canonicalAccess(m *croquis.Model, n string, nonInline bool) string {
	b, ok := m.Bindings[n]
	if !ok {
		return "_ctx." + n
	}
	switch b.Type {
	case croquis.SetupRef, croquis.SetupMaybeRef:
		if nonInline {
			return "$setup." + n
		}
		return "_unref(" + n + ")"
	case croquis.PropsAliased:
		return "__props." + b.AliasOf
	case croquis.Props:
		return "__props." + n
	case croquis.LiteralConst, croquis.SetupConst, croquis.SetupReactiveConst:
		if nonInline {
			return "$setup." + n
		}
		return n
	default:
		if nonInline {
			return "$setup." + n
		}
		return n
	}
}

// stripExpressionTypeSyntax removes trailing `as T`/`satisfies T` TS casts
// from a single expression (spec.md §4.F.3). Full TS-aware stripping of
// call-expression type arguments and arrow-parameter annotations is
// delegated to script.StripTypes for whole-block script content; this
// handles the narrower case of a single directive expression string where
// invoking the full esbuild transform per-expression would be wasteful.
func stripExpressionTypeSyntax(expr string) string {
	for _, kw := range []string{" as ", " satisfies "} {
		if idx := strings.LastIndex(expr, kw); idx > 0 {
			expr = strings.TrimSpace(expr[:idx])
		}
	}
	return expr
}
