// Package lint implements the template/style linter (spec.md §4.I): an
// ordered rule registry driving a visitor over the template AST plus
// Croquis, grounded on the teacher's NodeProcessor registration pattern
// (node_processor.go — named, ordered hooks applied over a tree) adapted
// from a post-render DOM pass into a pre-codegen AST pass.
package lint

import (
	"sort"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
)

// Severity is a lint diagnostic's level. Only Error and Warning exist;
// the lsp package maps them onto LSP's Error (1) and Warning (2).
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one rule violation (spec.md §4.I: "{rule_name, severity,
// message, start, end, help?, labels?[]}").
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Start    int
	End      int
	Help     string
}

// Rule is one lint check. Check is invoked once per template node in
// pre-order (see Context for the scope/element-stack state available
// during a check); a rule reports violations via ctx.Report.
type Rule struct {
	Name            string
	DefaultSeverity Severity
	Check           func(node template.Node, ctx *Context)
}

// Registry is an ordered set of rules, applied in registration order —
// matching the teacher's "processors are applied in order of
// registration" contract.
type Registry struct {
	rules []Rule
}

// NewRegistry returns a Registry pre-loaded with the built-in rule set.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(RequireVForKey)
	r.Register(NoElseWithoutIf)
	r.Register(NoDuplicateRef)
	r.Register(NoUnknownIdentifier)
	return r
}

// Register appends rule to the registry.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Run walks root's children, applying every registered rule to every
// node, then drops diagnostics silenced by an inline disable comment.
func Run(root *template.Root, m *croquis.Model, disables *DisableMap) []Diagnostic {
	ctx := &Context{Model: m, Disables: disables}
	reg := NewRegistry()

	template.Walk(root.Children, func(node template.Node, path []template.PathEntry) {
		ctx.Path = path
		for _, rule := range reg.rules {
			ctx.rule = rule
			rule.Check(node, ctx)
		}
	})

	out := ctx.diagnostics
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return filterDisabled(out, disables)
}

func filterDisabled(diags []Diagnostic, disables *DisableMap) []Diagnostic {
	if disables == nil {
		return diags
	}
	kept := diags[:0]
	for _, d := range diags {
		if !disables.IsDisabled(d.Rule, d.Start) {
			kept = append(kept, d)
		}
	}
	return kept
}
