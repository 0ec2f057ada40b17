package lsp

import (
	"encoding/json"
	"log"

	"github.com/vizehq/vize/lsp/jsonrpc"
)

type textDocumentIdentifier struct {
	URI string `json:"uri"`
}

type versionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

type textDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

type contentChange struct {
	Text string `json:"text"`
}

type didOpenParams struct {
	TextDocument textDocumentItem `json:"textDocument"`
}

type didChangeParams struct {
	TextDocument   versionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []contentChange                 `json:"contentChanges"`
}

type didCloseParams struct {
	TextDocument textDocumentIdentifier `json:"textDocument"`
}

type positionParams struct {
	TextDocument textDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

func (s *Server) handleDidOpen(raw json.RawMessage) {
	var p didOpenParams
	if json.Unmarshal(raw, &p) != nil {
		return
	}
	d := s.docs.Open(p.TextDocument.URI, p.TextDocument.Text, p.TextDocument.Version)
	s.ts.DidOpen(d.URI, "typescript", d.virtualTS, d.Version)
	s.publishDiagnostics(d)
}

func (s *Server) handleDidChange(raw json.RawMessage) {
	var p didChangeParams
	if json.Unmarshal(raw, &p) != nil || len(p.ContentChanges) == 0 {
		return
	}
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	d := s.docs.Change(p.TextDocument.URI, text, p.TextDocument.Version)
	s.ts.DidOpen(d.URI, "typescript", d.virtualTS, d.Version)
	s.publishDiagnostics(d)
}

func (s *Server) handleDidClose(raw json.RawMessage) {
	var p didCloseParams
	if json.Unmarshal(raw, &p) != nil {
		return
	}
	s.ts.DidClose(p.TextDocument.URI)
	s.docs.Close(p.TextDocument.URI)
}

// publishDiagnostics merges this document's lint diagnostics with the last
// diagnostics the external TS server reported for its virtual source
// (spec.md §4.J: "merge SFC parse errors, template transform errors, lint
// diagnostics, and (when available) TS diagnostics into one
// publishDiagnostics notification").
func (s *Server) publishDiagnostics(d *Document) {
	diags := d.Diagnostics()
	for _, tsd := range s.ts.Diagnostics(d.URI) {
		var ld LSPDiagnostic
		ld.Severity = tsd.Severity
		ld.Source = "tsgo"
		ld.Message = tsd.Message
		diags = append(diags, ld)
	}
	s.notify("textDocument/publishDiagnostics", map[string]any{
		"uri":         d.URI,
		"version":     d.Version,
		"diagnostics": diags,
	})
}

func (s *Server) handleHover(id json.RawMessage, raw json.RawMessage) {
	var p positionParams
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, nil)
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, nil)
		return
	}
	offset := OffsetAt(d.Text, p.Position)
	res := d.Hover(offset)
	if res.Found {
		s.reply(id, map[string]any{"contents": map[string]any{"kind": "markdown", "value": res.Contents}})
		return
	}
	if raw, ok := s.forwardHoverToTS(d, offset); ok {
		s.replyRaw(id, raw)
		return
	}
	s.reply(id, nil)
}

// forwardHoverToTS forwards a hover request that fell outside the
// template (i.e. inside script setup/script) to the external TS server
// against its virtual-TS projection of this document, per spec.md §4.J:
// "script identifier → forward to the external TS server's hover over
// the virtual TS projection". The TS server's own response positions
// describe the virtual source, not the SFC, so only the contents are
// useful to a caller — this server does not resolve the reverse mapping
// for a hover *response* range, only for future request offsets
// (VirtualOffset). The round trip to the TS server is a real process
// boundary; if a didChange recomputes d while it's in flight, d.Snapshot
// no longer matches and the now-stale response is discarded rather than
// replied with.
func (s *Server) forwardHoverToTS(d *Document, offset int) (json.RawMessage, bool) {
	if d.descriptor == nil {
		return nil, false
	}
	block := d.descriptor.ScriptSetupBlock
	if block == nil {
		block = d.descriptor.ScriptBlock
	}
	if block == nil {
		return nil, false
	}
	start := blockContentStart(d.Text, block)
	if offset < start || offset > start+len(block.Content) {
		return nil, false
	}
	virtualOffset := offset - start
	pos := PositionAt(d.virtualTS, virtualOffset)
	snapshot := d.Snapshot

	raw, err := s.ts.Hover(d.URI, pos.Line, pos.Character)
	if err != nil || raw == nil {
		return nil, false
	}
	if current := s.docs.Get(d.URI); current == nil || current.Snapshot != snapshot {
		return nil, false
	}
	return raw, true
}

func (s *Server) replyRaw(id json.RawMessage, result json.RawMessage) {
	if err := s.w.Write(&jsonrpc.Message{ID: id, Result: result}); err != nil {
		log.Printf("lsp: write response: %v", err)
	}
}

func (s *Server) handleCompletion(id json.RawMessage, raw json.RawMessage) {
	var p positionParams
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, nil)
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, []CompletionItem{})
		return
	}
	offset := OffsetAt(d.Text, p.Position)
	s.reply(id, d.Completion(offset))
}

func (s *Server) handleDefinition(id json.RawMessage, raw json.RawMessage) {
	var p positionParams
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, nil)
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, nil)
		return
	}
	loc, ok := d.Definition(OffsetAt(d.Text, p.Position))
	if !ok {
		s.reply(id, nil)
		return
	}
	s.reply(id, lspLocation(d.URI, loc))
}

func (s *Server) handleReferences(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		positionParams
		Context struct {
			IncludeDeclaration bool `json:"includeDeclaration"`
		} `json:"context"`
	}
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, []any{})
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, []any{})
		return
	}
	locs := d.References(OffsetAt(d.Text, p.Position), p.Context.IncludeDeclaration)
	out := make([]map[string]any, 0, len(locs))
	for _, l := range locs {
		out = append(out, lspLocation(d.URI, l))
	}
	s.reply(id, out)
}

func (s *Server) handlePrepareRename(id json.RawMessage, raw json.RawMessage) {
	var p positionParams
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, nil)
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, nil)
		return
	}
	start, end, _, ok := d.PrepareRename(OffsetAt(d.Text, p.Position))
	if !ok {
		s.replyError(id, -32803, "this identifier cannot be renamed")
		return
	}
	s.reply(id, map[string]any{
		"start": PositionAt(d.Text, start),
		"end":   PositionAt(d.Text, end),
	})
}

func (s *Server) handleRename(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		positionParams
		NewName string `json:"newName"`
	}
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, nil)
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, nil)
		return
	}
	locs, ok := d.Rename(OffsetAt(d.Text, p.Position), p.NewName)
	if !ok {
		s.replyError(id, -32803, "this identifier cannot be renamed")
		return
	}
	edits := make([]map[string]any, 0, len(locs))
	for _, l := range locs {
		edits = append(edits, map[string]any{
			"range":   map[string]any{"start": l.Start, "end": l.End},
			"newText": p.NewName,
		})
	}
	s.reply(id, map[string]any{"changes": map[string]any{d.URI: edits}})
}

func (s *Server) handleSemanticTokens(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		TextDocument textDocumentIdentifier `json:"textDocument"`
	}
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, map[string]any{"data": []int{}})
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, map[string]any{"data": []int{}})
		return
	}
	s.reply(id, map[string]any{"data": encodeSemanticTokens(d.SemanticTokens())})
}

// encodeSemanticTokens delta-encodes tokens into LSP's flat
// [deltaLine, deltaStartChar, length, tokenType, tokenModifiers] quintuples.
func encodeSemanticTokens(toks []SemanticToken) []int {
	data := make([]int, 0, len(toks)*5)
	prevLine, prevChar := 0, 0
	for _, t := range toks {
		deltaLine := t.Line - prevLine
		deltaChar := t.Char
		if deltaLine == 0 {
			deltaChar = t.Char - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.Length, t.Type, 0)
		prevLine, prevChar = t.Line, t.Char
	}
	return data
}

func (s *Server) handleCodeAction(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		TextDocument textDocumentIdentifier `json:"textDocument"`
		Range        struct {
			Start Position `json:"start"`
			End   Position `json:"end"`
		} `json:"range"`
	}
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, []any{})
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil {
		s.reply(id, []any{})
		return
	}
	start := OffsetAt(d.Text, p.Range.Start)
	end := OffsetAt(d.Text, p.Range.End)
	actions := d.CodeActions(start, end)
	out := make([]map[string]any, 0, len(actions))
	for _, a := range actions {
		edits := make([]map[string]any, 0, len(a.Edits))
		for _, e := range a.Edits {
			edits = append(edits, map[string]any{
				"range":   map[string]any{"start": e.Start, "end": e.End},
				"newText": e.NewText,
			})
		}
		out = append(out, map[string]any{
			"title": a.Title,
			"edit":  map[string]any{"changes": map[string]any{d.URI: edits}},
		})
	}
	s.reply(id, out)
}

func (s *Server) handleDocumentSymbol(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		TextDocument textDocumentIdentifier `json:"textDocument"`
	}
	if json.Unmarshal(raw, &p) != nil {
		s.reply(id, []any{})
		return
	}
	d := s.docs.Get(p.TextDocument.URI)
	if d == nil || d.model == nil {
		s.reply(id, []any{})
		return
	}
	var syms []map[string]any
	for name, b := range d.model.Bindings {
		syms = append(syms, map[string]any{"name": name, "kind": 13, "detail": b.Type.String()})
	}
	s.reply(id, syms)
}

func (s *Server) handleWorkspaceSymbol(id json.RawMessage, raw json.RawMessage) {
	var p struct {
		Query string `json:"query"`
	}
	if json.Unmarshal(raw, &p) != nil || s.root == nil {
		s.reply(id, []any{})
		return
	}
	syms, err := WorkspaceSymbols(s.docs.FS(s.root), p.Query)
	if err != nil {
		s.reply(id, []any{})
		return
	}
	var out []map[string]any
	for _, sym := range syms {
		out = append(out, map[string]any{
			"name":     sym.Name,
			"kind":     5,
			"location": map[string]any{"uri": "file://" + sym.File},
		})
	}
	s.reply(id, out)
}

func lspLocation(uri string, l Location) map[string]any {
	return map[string]any{
		"uri":   uri,
		"range": map[string]any{"start": l.Start, "end": l.End},
	}
}
