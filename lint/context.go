package lint

import (
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
)

// Context carries the state a Rule.Check needs beyond the current node:
// the ancestor path, an element stack for parent/child lookups, the
// in-scope v-for alias set (so a rule can answer "is this identifier
// bound by an enclosing v-for?"), and the Croquis model for script-scope
// bindings. Report appends a Diagnostic anchored to the currently-running
// rule.
type Context struct {
	Model    *croquis.Model
	Path     []template.PathEntry
	Disables *DisableMap

	rule        Rule
	diagnostics []Diagnostic
	seenRefs    map[string]bool
}

// Elements returns the current ancestor-element stack, innermost last,
// derived from Path (the Walk-provided parent/index chain — AST nodes
// hold no parent pointer of their own, per template's arena design).
func (c *Context) Elements() []*template.Element {
	var out []*template.Element
	for _, entry := range c.Path {
		if el, ok := (*entry.Parent)[entry.Index].(*template.Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// InScopeForVar reports whether name is bound by an enclosing v-for or
// v-slot. Lint runs over the raw parsed tree (before transform's
// structural passes rewrite v-for into a *template.For node), so aliases
// are read directly off each ancestor Element's directives.
func (c *Context) InScopeForVar(name string) bool {
	for _, entry := range c.Path {
		el, ok := (*entry.Parent)[entry.Index].(*template.Element)
		if !ok {
			continue
		}
		if d := findDirective(el, "for"); d != nil && d.Exp != nil {
			if value, key, index, _, ok := parseForExpr(d.Exp.Content); ok {
				if value == name || key == name || index == name {
					return true
				}
			}
		}
		if d := findDirective(el, "slot"); d != nil && d.Exp != nil && d.Exp.Content == name {
			return true
		}
	}
	return false
}

// Report records a violation of the currently-running rule at node's
// location.
func (c *Context) Report(node template.Node, message string) {
	loc := node.Location()
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Rule:     c.rule.Name,
		Severity: c.rule.DefaultSeverity,
		Message:  message,
		Start:    loc.Span.Start,
		End:      loc.Span.End,
	})
}

// ReportHelp is Report plus a help string surfaced in the diagnostic's
// `help` field (e.g. a suggested fix code action can key off of).
func (c *Context) ReportHelp(node template.Node, message, help string) {
	loc := node.Location()
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Rule:     c.rule.Name,
		Severity: c.rule.DefaultSeverity,
		Message:  message,
		Help:     help,
		Start:    loc.Span.Start,
		End:      loc.Span.End,
	})
}
