// Package style composes an SFC's <style> blocks into one CSS string,
// compiling LESS blocks via the teacher's lessgo pipeline
// (less_processor.go's dst.Parser + renderer.Renderer, generalized from
// "style tag inside an HTML document" to "style block inside an SFC") and
// applying scoped-CSS selector rewriting for blocks carrying `scoped`.
package style

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/titpetric/lessgo/dst"
	"github.com/titpetric/lessgo/renderer"

	"github.com/vizehq/vize/sfc"
)

// Compose compiles and concatenates every style block, rewriting scoped
// blocks' selectors with a `[data-v-<scopeID>]` attribute suffix and
// resolving `:deep(x)` to `[data-v-<scopeID>] x` (spec.md §4.H step 5).
func Compose(blocks []*sfc.Block, scopeID string) (string, error) {
	var out strings.Builder
	for _, b := range blocks {
		css, err := compile(b)
		if err != nil {
			return "", fmt.Errorf("compiling style block: %w", err)
		}
		if b.Scoped() {
			css = ScopeCSS(css, scopeID)
		}
		out.WriteString(css)
		out.WriteString("\n")
	}
	return out.String(), nil
}

// compile renders a style block's content to plain CSS, running it through
// lessgo when lang="less".
func compile(b *sfc.Block) (string, error) {
	if b.Lang != "less" {
		return b.Content, nil
	}
	parser := dst.NewParser(bytes.NewReader([]byte(b.Content)))
	file, err := parser.Parse()
	if err != nil {
		return "", fmt.Errorf("parsing LESS: %w", err)
	}
	r := renderer.NewRenderer()
	css, err := r.Render(file)
	if err != nil {
		return "", fmt.Errorf("rendering LESS to CSS: %w", err)
	}
	return css, nil
}

var (
	ruleHeader  = regexp.MustCompile(`([^{}]+)\{`)
	deepPattern = regexp.MustCompile(`:deep\(([^)]*)\)`)
	atRulePfx   = regexp.MustCompile(`^\s*@`)
)

// ScopeCSS rewrites every selector's rule header to carry the
// `[data-v-<scopeID>]` attribute, and `:deep(x)` to
// `[data-v-<scopeID>] x` (spec.md §4.H step 5). This is a line-oriented
// textual rewrite, not a full CSS parser: lessgo's dst package models LESS
// syntax, not plain-CSS selector lists, and no pack library ships a CSS
// selector AST, so this stays a justified stdlib-only corner (documented
// in DESIGN.md) scoped to the selector-rewrite rules spec.md actually
// names.
func ScopeCSS(css, scopeID string) string {
	attr := "[data-v-" + scopeID + "]"
	return ruleHeader.ReplaceAllStringFunc(css, func(header string) string {
		selectorPart := header[:len(header)-1]
		if atRulePfx.MatchString(selectorPart) {
			return header
		}
		selectors := strings.Split(selectorPart, ",")
		for i, sel := range selectors {
			sel = strings.TrimSpace(sel)
			if deepPattern.MatchString(sel) {
				sel = deepPattern.ReplaceAllString(sel, attr+" $1")
			} else if sel != "" {
				sel = sel + attr
			}
			selectors[i] = sel
		}
		return strings.Join(selectors, ", ") + " {"
	})
}

// VBindPattern matches a `v-bind(expr)`/`v-bind('expr')` CSS-var reference
// inside a style block (spec.md §4.H step 5: "v-bind() occurrences produce
// CSS-vars referenced by the render function").
var VBindPattern = regexp.MustCompile(`v-bind\(\s*['"]?([^'")]+)['"]?\s*\)`)

// ExtractVBinds returns the set of expressions referenced via v-bind() in
// css, in first-seen order, and the css with each occurrence replaced by
// its computed CSS custom property reference.
func ExtractVBinds(css string) (string, []string) {
	var exprs []string
	seen := map[string]bool{}
	rewritten := VBindPattern.ReplaceAllStringFunc(css, func(m string) string {
		sub := VBindPattern.FindStringSubmatch(m)
		expr := strings.TrimSpace(sub[1])
		if !seen[expr] {
			seen[expr] = true
			exprs = append(exprs, expr)
		}
		return "var(--" + cssVarName(expr) + ")"
	})
	return rewritten, exprs
}

func cssVarName(expr string) string {
	var sb strings.Builder
	for _, r := range expr {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
