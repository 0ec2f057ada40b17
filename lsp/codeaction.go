package lsp

// TextEdit is one wire edit to apply to the document (LSP's TextEdit,
// UTF-16-position caveats aside — this server works in byte/line/char
// terms consistent with Position elsewhere in the package).
type TextEdit struct {
	Start, End Position
	NewText    string
}

// CodeAction is one textDocument/codeAction response entry: a title plus
// the edits it would apply.
type CodeAction struct {
	Title string
	Edits []TextEdit
}

// CodeActions proposes fixes for lint diagnostics overlapping the given
// range, per spec.md §4.J's worked examples ("Add missing :key",
// "Wrap in toRefs(...)"). Only vue/require-v-for-key has a mechanical,
// always-safe fix; the rest are left to the human (wrapping script code
// safely needs knowing which destructured binding is reactive, which
// Croquis only approximates via Loss tracking).
func (d *Document) CodeActions(startOffset, endOffset int) []CodeAction {
	var actions []CodeAction
	for _, diag := range d.diags {
		if diag.End < startOffset || diag.Start > endOffset {
			continue
		}
		switch diag.Rule {
		case "vue/require-v-for-key":
			pos := PositionAt(d.Text, diag.Start)
			actions = append(actions, CodeAction{
				Title: "Add missing :key",
				Edits: []TextEdit{{Start: pos, End: pos, NewText: ` :key="index"`}},
			})
		}
	}
	return actions
}
