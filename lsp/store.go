// Package lsp implements the SFC language-server façade (spec.md §4.J): a
// DocumentStore of the latest parse/analysis per URI, request handlers for
// hover/completion/diagnostics/definition/references/rename/semantic
// tokens/code actions, and (in lsp/tsclient) a thin stdio client to an
// external TypeScript language server for script-scope requests.
package lsp

import (
	"sync"

	"github.com/vizehq/vize"
	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/codegen"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/internal/ulid"
	"github.com/vizehq/vize/lint"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// Document is one open SFC's latest text plus its lazily-recomputed
// derived data (spec.md §4.J: "version bumps drop prior state").
type Document struct {
	URI     string
	Text    string
	Version int

	// Snapshot is a fresh ULID minted every recompute, monotonic-enough to
	// detect a document that changed out from under an in-flight async
	// request (e.g. forwardHoverToTS's round trip to the external TS
	// server) without needing a second global counter.
	Snapshot string

	descriptor *sfc.Descriptor
	model      *croquis.Model
	root       *template.Root
	diags      []lint.Diagnostic
	virtualTS  string
}

// DocumentStore holds every open document keyed by URI, guarded by a
// single RWMutex (spec.md §5: "shared state is the DocumentStore guarded
// by per-document read/write locks" — simplified here to one store-wide
// lock, since SFC recompilation is cheap enough per document that
// per-document lock striping isn't worth the bookkeeping at this scale).
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore returns an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open records a newly opened document and computes its derived data.
func (s *DocumentStore) Open(uri, text string, version int) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := &Document{URI: uri, Text: text, Version: version}
	s.docs[uri] = d
	s.recompute(d)
	return d
}

// Change replaces a document's full text and bumps its version, dropping
// prior derived state (spec.md §4.J).
func (s *DocumentStore) Change(uri, text string, version int) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		d = &Document{URI: uri}
		s.docs[uri] = d
	}
	d.Text = text
	d.Version = version
	s.recompute(d)
	return d
}

// Close drops a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the current snapshot for uri, or nil if not open.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// recompute reruns split/analyze/parse/lint for d (caller holds s.mu).
// Errors from any stage are swallowed into d's lint diagnostics list
// rather than propagated — an LSP client expects *a* diagnostics set back,
// never a hard failure, for a document it is actively editing. Every
// diagnostic landing in d.diags is rebased to an SFC-absolute byte span
// here, since template and style lint both run over a block's own
// Content rather than the full SFC source.
func (s *DocumentStore) recompute(d *Document) {
	d.Snapshot = ulid.String()

	desc, err := sfc.Split(arena.New(len(d.Text)), d.URI, d.Text)
	if err != nil {
		d.diags = []lint.Diagnostic{{Rule: "vize/parse-error", Severity: lint.Error, Message: err.Error()}}
		return
	}
	d.descriptor = desc

	res, err := vize.Compile(d.URI, d.Text, vize.Options{Mode: codegen.ModeModule})
	if err != nil {
		d.diags = []lint.Diagnostic{{Rule: "vize/compile-error", Severity: lint.Error, Message: err.Error()}}
		return
	}
	d.model = res.Bindings

	d.diags = nil
	if desc.TemplateBlock != nil {
		d.root = template.Parse(arena.New(len(desc.TemplateBlock.Content)), desc.TemplateBlock.Content)
		dm := lint.BuildDisableMap(d.root)
		d.diags = rebaseDiagnostics(lint.Run(d.root, d.model, dm), blockContentStart(d.Text, desc.TemplateBlock))
	}

	for _, style := range desc.StyleBlocks {
		d.diags = append(d.diags, rebaseDiagnostics(lint.LintCSS(style.Content), blockContentStart(d.Text, style))...)
	}

	d.virtualTS = buildVirtualTS(desc, d.model)
}

func rebaseDiagnostics(diags []lint.Diagnostic, base int) []lint.Diagnostic {
	out := make([]lint.Diagnostic, len(diags))
	for i, d := range diags {
		d.Start += base
		d.End += base
		out[i] = d
	}
	return out
}
