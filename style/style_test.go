package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/style"
)

func TestScopeCSSRewritesSimpleSelector(t *testing.T) {
	out := style.ScopeCSS(".title { color: red; }", "abcd1234")
	assert.Contains(t, out, ".title[data-v-abcd1234] {")
}

func TestScopeCSSRewritesMultipleCommaSelectors(t *testing.T) {
	out := style.ScopeCSS("h1, h2 { margin: 0; }", "abcd1234")
	assert.Contains(t, out, "h1[data-v-abcd1234], h2[data-v-abcd1234] {")
}

func TestScopeCSSRewritesDeep(t *testing.T) {
	out := style.ScopeCSS(".a :deep(.b) { color: blue; }", "abcd1234")
	assert.Contains(t, out, "[data-v-abcd1234] .b {")
}

func TestScopeCSSLeavesAtRuleSelectorAlone(t *testing.T) {
	out := style.ScopeCSS("@media (min-width: 100px) { .a { color: red; } }", "abcd1234")
	assert.Contains(t, out, "@media (min-width: 100px) {")
}

func TestExtractVBindsRewritesCSSVar(t *testing.T) {
	css := ".a { color: v-bind(color); }"
	rewritten, exprs := style.ExtractVBinds(css)
	assert.Equal(t, []string{"color"}, exprs)
	assert.Contains(t, rewritten, "var(--color)")
}
