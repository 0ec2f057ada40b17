package lint

import (
	"regexp"
	"strings"
)

// CSS rules run over raw style-block text rather than the template AST
// (spec.md §4.I: "CSS rules process style blocks... `/* vize-disable-line
// rule */` and adjacent forms work analogously"). No CSS parser ships in
// the example pack (lessgo models LESS syntax, not a general selector/
// declaration AST), so this stays the same line-oriented regex approach
// style.ScopeCSS already uses — justified stdlib-only corner, scoped to
// exactly the two stylistic checks spec.md names.
var (
	importantPattern = regexp.MustCompile(`!important`)
	idSelectorLine   = regexp.MustCompile(`(^|[\s,])#[A-Za-z_-][\w-]*`)
	cssDisableLine   = regexp.MustCompile(`/\*\s*vize-disable-line\s*([^*]*)\*/`)
)

// LintCSS scans css line by line for `!important` declarations and ID
// selectors, both warnings by default (spec.md §4.I stylistic).
func LintCSS(css string) []Diagnostic {
	var out []Diagnostic
	lines := strings.Split(css, "\n")
	offset := 0
	for _, line := range lines {
		disabled := cssDisabledRules(line)
		if importantPattern.MatchString(line) && !disabled["vue/css-no-important"] && !disabled["*"] {
			out = append(out, Diagnostic{
				Rule: "vue/css-no-important", Severity: Warning,
				Message: "avoid !important in scoped styles",
				Start:   offset, End: offset + len(line),
			})
		}
		if idSelectorLine.MatchString(line) && !disabled["vue/css-no-id-selector"] && !disabled["*"] {
			out = append(out, Diagnostic{
				Rule: "vue/css-no-id-selector", Severity: Warning,
				Message: "avoid ID selectors in component styles",
				Start:   offset, End: offset + len(line),
			})
		}
		offset += len(line) + 1
	}
	return out
}

func cssDisabledRules(line string) map[string]bool {
	m := cssDisableLine.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	rules := strings.Fields(m[1])
	if len(rules) == 0 {
		return map[string]bool{"*": true}
	}
	out := make(map[string]bool, len(rules))
	for _, r := range rules {
		out[r] = true
	}
	return out
}
