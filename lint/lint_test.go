package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/lint"
	"github.com/vizehq/vize/template"
)

func parse(t *testing.T, src string) *template.Root {
	t.Helper()
	a := arena.New(len(src))
	return template.Parse(a, src)
}

func run(t *testing.T, src string) []lint.Diagnostic {
	t.Helper()
	root := parse(t, src)
	m := croquis.NewModel()
	dm := lint.BuildDisableMap(root)
	return lint.Run(root, m, dm)
}

func hasRule(diags []lint.Diagnostic, rule string) bool {
	for _, d := range diags {
		if d.Rule == rule {
			return true
		}
	}
	return false
}

func TestRequireVForKeyFlagsMissingKey(t *testing.T) {
	diags := run(t, `<ul><li v-for="item in items">{{ item }}</li></ul>`)
	assert.True(t, hasRule(diags, "vue/require-v-for-key"))
}

func TestRequireVForKeyPassesWithKey(t *testing.T) {
	diags := run(t, `<ul><li v-for="item in items" :key="item.id">{{ item }}</li></ul>`)
	assert.False(t, hasRule(diags, "vue/require-v-for-key"))
}

func TestNoElseWithoutIfFlagsOrphanElse(t *testing.T) {
	diags := run(t, `<p v-else>no</p>`)
	assert.True(t, hasRule(diags, "vue/no-else-without-if"))
}

func TestNoElseWithoutIfPassesAdjacentToIf(t *testing.T) {
	diags := run(t, `<p v-if="show">yes</p><p v-else>no</p>`)
	assert.False(t, hasRule(diags, "vue/no-else-without-if"))
}

func TestNoDuplicateRefFlagsSecondOccurrence(t *testing.T) {
	diags := run(t, `<div><input ref="box"/><input ref="box"/></div>`)
	assert.True(t, hasRule(diags, "vue/no-duplicate-ref"))
}

func TestNoUnknownIdentifierFlagsUnboundName(t *testing.T) {
	diags := run(t, `<p>{{ mystery }}</p>`)
	assert.True(t, hasRule(diags, "vue/no-unknown-identifier"))
}

func TestNoUnknownIdentifierIgnoresForAlias(t *testing.T) {
	diags := run(t, `<p v-for="item in items">{{ item }}</p>`)
	found := false
	for _, d := range diags {
		if d.Rule == "vue/no-unknown-identifier" && d.Message == "\"item\" is not defined in script scope" {
			found = true
		}
	}
	assert.False(t, found)
}

func TestDisableNextLineSuppressesFollowingViolation(t *testing.T) {
	src := `<ul><!-- vize-disable-next-line vue/require-v-for-key --><li v-for="item in items">{{ item }}</li></ul>`
	diags := run(t, src)
	assert.False(t, hasRule(diags, "vue/require-v-for-key"))
}

func TestDisableBlockSuppressesUntilEnable(t *testing.T) {
	src := `<!-- vize-disable vue/no-duplicate-ref --><input ref="box"/><input ref="box"/><!-- vize-enable --><input ref="later"/>`
	diags := run(t, src)
	assert.False(t, hasRule(diags, "vue/no-duplicate-ref"))
}

func TestRunIsDeterministicallyOrderedByStart(t *testing.T) {
	diags := run(t, `<p>{{ a }}</p><p>{{ b }}</p>`)
	require.True(t, len(diags) >= 2)
	for i := 1; i < len(diags); i++ {
		assert.LessOrEqual(t, diags[i-1].Start, diags[i].Start)
	}
}
