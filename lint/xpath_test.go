package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/lint"
)

func TestRunXPathRulesMatchesConfiguredQuery(t *testing.T) {
	rules := []lint.XPathRule{
		{Name: "no-table-layout", Severity: lint.Warning, Query: "//table", Message: "avoid table-based layout"},
	}
	diags := lint.RunXPathRules(`<div><table><tr><td>x</td></tr></table></div>`, rules, nil)
	assert.Len(t, diags, 1)
	assert.Equal(t, "no-table-layout", diags[0].Rule)
}

func TestRunXPathRulesNoMatchesWhenAbsent(t *testing.T) {
	rules := []lint.XPathRule{
		{Name: "no-table-layout", Severity: lint.Warning, Query: "//table", Message: "avoid table-based layout"},
	}
	diags := lint.RunXPathRules(`<div><p>fine</p></div>`, rules, nil)
	assert.Empty(t, diags)
}
