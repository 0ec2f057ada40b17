package lsp

import "github.com/vizehq/vize/lint"

// LSPDiagnostic is the wire shape of one textDocument/publishDiagnostics
// entry (LSP 3.17's Diagnostic, trimmed to the fields this server fills
// in).
type LSPDiagnostic struct {
	Range struct {
		Start Position `json:"start"`
		End   Position `json:"end"`
	} `json:"range"`
	Severity int    `json:"severity"`
	Source   string `json:"source"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
}

// severity maps lint.Severity onto LSP's 1..4 scale (spec.md §4.J:
// "Error→Error, Warning→Warning, Info→Info, Hint→Hint" — the linter only
// produces Error/Warning today, so Info/Hint are reachable only via a
// future tsclient-origin diagnostic).
func severity(s lint.Severity) int {
	if s == lint.Error {
		return 1
	}
	return 2
}

// Diagnostics merges the document's lint diagnostics into the LSP wire
// shape, converting each byte span back to line/character against the
// document's current text (spec.md §4.J: "merge SFC parse errors,
// template transform errors, lint diagnostics..."). d.diags is already
// rebased to SFC-absolute offsets by DocumentStore.recompute.
func (d *Document) Diagnostics() []LSPDiagnostic {
	var out []LSPDiagnostic
	for _, diag := range d.diags {
		var ld LSPDiagnostic
		ld.Severity = severity(diag.Severity)
		ld.Source = "vize"
		ld.Message = diag.Message
		ld.Code = diag.Rule
		ld.Range.Start = PositionAt(d.Text, diag.Start)
		ld.Range.End = PositionAt(d.Text, diag.End)
		out = append(out, ld)
	}
	return out
}
