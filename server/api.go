// Package server is a local-iteration debugging console: a platform.Module
// (grounded on the teacher's server/tour/handler.go) exposing compile/lint/
// hover-preview over plain HTTP, explicitly NOT the LSP JSON-RPC transport
// (that stays an external boundary per spec.md §1) — just a way to poke at
// the compiler and linter from a browser or curl while iterating on a
// single SFC, the way server/api.go's POST /render exists for the teacher's
// template engine.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	yaml "gopkg.in/yaml.v3"

	"github.com/vizehq/vize"
	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/codegen"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/lint"
	"github.com/vizehq/vize/lsp"
	"github.com/vizehq/vize/script"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

// ruleCatalog is the lint rules this console can describe, mirroring the
// default set lint.NewRegistry() registers.
var ruleCatalog = map[string]lint.Rule{
	lint.RequireVForKey.Name:      lint.RequireVForKey,
	lint.NoElseWithoutIf.Name:     lint.NoElseWithoutIf,
	lint.NoDuplicateRef.Name:      lint.NoDuplicateRef,
	lint.NoUnknownIdentifier.Name: lint.NoUnknownIdentifier,
}

// RuleResponse describes one lint rule, or an error if it's unknown.
type RuleResponse struct {
	Name            string `json:"name,omitempty"`
	DefaultSeverity string `json:"defaultSeverity,omitempty"`
	Error           string `json:"error,omitempty"`
}

// CompileRequest contains one SFC's source and compile options, mirroring
// server/api.go's RenderRequest shape (Template/Data/Files -> Filename/
// Source/Options here).
type CompileRequest struct {
	Filename string `json:"filename" yaml:"filename"`
	Source   string `json:"source" yaml:"source"`
	SSR      bool   `json:"ssr" yaml:"ssr"`
	Vapor    bool   `json:"vapor" yaml:"vapor"`
}

// CompileResponse contains the generated code/css or an error, mirroring
// server/api.go's RenderResponse shape.
type CompileResponse struct {
	Code  string `json:"code,omitempty"`
	CSS   string `json:"css,omitempty"`
	Error string `json:"error,omitempty"`
}

// LintRequest contains one SFC's source to lint.
type LintRequest struct {
	Filename string `json:"filename" yaml:"filename"`
	Source   string `json:"source" yaml:"source"`
}

// LintResponse contains every diagnostic found, or an error.
type LintResponse struct {
	Diagnostics []lint.Diagnostic `json:"diagnostics,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// HoverRequest contains one SFC's source and a byte offset to hover at.
type HoverRequest struct {
	Filename string `json:"filename" yaml:"filename"`
	Source   string `json:"source" yaml:"source"`
	Offset   int    `json:"offset" yaml:"offset"`
}

// HoverResponse contains the resolved hover text, if any.
type HoverResponse struct {
	Contents string `json:"contents,omitempty"`
	Found    bool   `json:"found"`
	Error    string `json:"error,omitempty"`
}

// Compile runs vize.Compile over req, the handler half shared between
// handleCompile and any future CLI/test caller, matching server/api.go's
// Render/RenderHandler split.
func Compile(req CompileRequest) (CompileResponse, error) {
	mode := codegen.ModeModule
	res, err := vize.Compile(req.Filename, req.Source, vize.Options{
		Mode:  mode,
		SSR:   req.SSR,
		Vapor: req.Vapor,
	})
	if err != nil {
		return CompileResponse{}, err
	}
	return CompileResponse{Code: res.Code, CSS: res.CSS}, nil
}

// Lint runs the template and style linters over req's source.
func Lint(req LintRequest) (LintResponse, error) {
	source := req.Source
	desc, err := sfc.Split(arena.New(len(source)), req.Filename, source)
	if err != nil {
		return LintResponse{}, err
	}

	m := croquis.NewModel()
	if desc.ScriptBlock != nil {
		_ = script.Analyze(m, desc.ScriptBlock.Content, desc.ScriptBlock.Lang, false)
	}
	if desc.ScriptSetupBlock != nil {
		_ = script.Analyze(m, desc.ScriptSetupBlock.Content, desc.ScriptSetupBlock.Lang, true)
	}

	var diags []lint.Diagnostic
	if desc.TemplateBlock != nil {
		root := template.Parse(arena.New(len(desc.TemplateBlock.Content)), desc.TemplateBlock.Content)
		diags = append(diags, lint.Run(root, m, lint.BuildDisableMap(root))...)
	}
	for _, style := range desc.StyleBlocks {
		diags = append(diags, lint.LintCSS(style.Content)...)
	}
	return LintResponse{Diagnostics: diags}, nil
}

// Hover resolves a single offset against req's source via a scratch
// lsp.DocumentStore entry — the console doesn't keep documents open across
// requests the way the real LSP server does.
func Hover(req HoverRequest) HoverResponse {
	store := lsp.NewDocumentStore()
	d := store.Open(req.Filename, req.Source, 1)
	res := d.Hover(req.Offset)
	return HoverResponse{Contents: res.Contents, Found: res.Found}
}

func handleCompile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req CompileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := Compile(req)
	if err != nil {
		res = CompileResponse{Error: err.Error()}
	}
	_ = json.NewEncoder(w).Encode(res)
}

func handleLint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req LintRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := Lint(req)
	if err != nil {
		res = LintResponse{Error: err.Error()}
	}
	_ = json.NewEncoder(w).Encode(res)
}

func handleHover(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req HoverRequest
	if !decodeBody(w, r, &req) {
		return
	}
	_ = json.NewEncoder(w).Encode(Hover(req))
}

// handleRule serves GET /rule/{namespace}/{rule} (rule names are
// "namespace/id", e.g. "vue/require-v-for-key"), following
// server/tour/handler.go's two-segment chi.URLParam(r, "chapter")/
// chi.URLParam(r, "lesson") use over the platform.Router-mounted route.
func handleRule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := chi.URLParam(r, "namespace") + "/" + chi.URLParam(r, "rule")
	rule, ok := ruleCatalog[name]
	if !ok {
		_ = json.NewEncoder(w).Encode(RuleResponse{Error: "unknown rule: " + name})
		return
	}
	_ = json.NewEncoder(w).Encode(RuleResponse{Name: rule.Name, DefaultSeverity: rule.DefaultSeverity.String()})
}

// decodeBody decodes a YAML (or plain-JSON, a valid YAML subset) request
// body, matching server/api.go's yaml.v3 decoding of request bodies. On
// error it writes the error response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := yaml.NewDecoder(r.Body).Decode(v); err != nil {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}
