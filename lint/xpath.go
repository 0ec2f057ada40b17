package lint

import (
	"strings"

	"github.com/antchfx/htmlquery"
)

// XPathRule is a project-configured structural rule expressed as an XPath
// query (spec.md §4.I: rules are not limited to the built-in Go set),
// grounded on buke-esbuild-plugin-vue-go's RemoveTagXPaths option
// (html.go: `htmlquery.Find(doc, xpath)` over a parsed document) —
// adapted here from "find and remove" into "find and report".
type XPathRule struct {
	Name     string
	Severity Severity
	Query    string
	Message  string
}

// RunXPathRules parses templateHTML with golang.org/x/net/html (via
// htmlquery, which wraps it) and evaluates each rule's XPath query against
// the resulting document, emitting one Diagnostic per match. Byte offsets
// are unavailable from htmlquery's DOM (it doesn't retain source
// positions), so matches report a zero-width diagnostic; callers wanting
// precise spans should express the same check as a Rule over
// template.Node instead — this entry point exists for ad-hoc structural
// queries a project wants without writing Go.
func RunXPathRules(templateHTML string, rules []XPathRule, disables *DisableMap) []Diagnostic {
	doc, err := htmlquery.Parse(strings.NewReader(templateHTML))
	if err != nil {
		return nil
	}
	var out []Diagnostic
	for _, rule := range rules {
		nodes, err := htmlquery.QueryAll(doc, rule.Query)
		if err != nil {
			continue
		}
		for range nodes {
			d := Diagnostic{Rule: rule.Name, Severity: rule.Severity, Message: rule.Message}
			if disables != nil && disables.IsDisabled(rule.Name, d.Start) {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}
