package lsp

import (
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/vizehq/vize/lsp/jsonrpc"
	"github.com/vizehq/vize/lsp/tsclient"
)

// Server is the stdio JSON-RPC 2.0 dispatch loop (spec.md §4.J/§6: "the
// language server speaks LSP 3.17 over stdin/stdout"), grounded on the
// same Content-Length framing tsclient uses to talk to the external TS
// server, here running in the opposite direction.
type Server struct {
	docs *DocumentStore
	ts   *tsclient.Client
	root fs.FS

	w *jsonrpc.Writer
	r *jsonrpc.Reader

	shutdown bool
}

// NewServer builds a Server reading/writing in and out, with workspaceRoot
// as the on-disk lower layer for the document overlay and tsPath the
// external TS server executable (empty to run without one).
func NewServer(in io.Reader, out io.Writer, workspaceRoot string, tsPath string) *Server {
	var root fs.FS
	if workspaceRoot != "" {
		root = os.DirFS(workspaceRoot)
	}
	return &Server{
		docs: NewDocumentStore(),
		ts:   tsclient.Start(tsPath, 5*time.Second),
		root: root,
		w:    jsonrpc.NewWriter(out),
		r:    jsonrpc.NewReader(in),
	}
}

// Run reads and dispatches requests/notifications until the stream closes
// or a shutdown/exit sequence completes.
func (s *Server) Run() error {
	for !s.shutdown {
		msg, err := s.r.Read()
		if err != nil {
			return err
		}
		s.dispatch(msg)
	}
	return nil
}

func (s *Server) dispatch(msg *jsonrpc.Message) {
	switch msg.Method {
	case "initialize":
		s.reply(msg.ID, initializeResult())
	case "initialized":
		// notification, nothing to do
	case "shutdown":
		s.ts.Shutdown()
		s.reply(msg.ID, nil)
	case "exit":
		s.shutdown = true
	case "textDocument/didOpen":
		s.handleDidOpen(msg.Params)
	case "textDocument/didChange":
		s.handleDidChange(msg.Params)
	case "textDocument/didClose":
		s.handleDidClose(msg.Params)
	case "textDocument/didSave":
		// diagnostics are already republished on every didChange
	case "textDocument/hover":
		s.handleHover(msg.ID, msg.Params)
	case "textDocument/completion":
		s.handleCompletion(msg.ID, msg.Params)
	case "textDocument/definition":
		s.handleDefinition(msg.ID, msg.Params)
	case "textDocument/references":
		s.handleReferences(msg.ID, msg.Params)
	case "textDocument/prepareRename":
		s.handlePrepareRename(msg.ID, msg.Params)
	case "textDocument/rename":
		s.handleRename(msg.ID, msg.Params)
	case "textDocument/semanticTokens/full":
		s.handleSemanticTokens(msg.ID, msg.Params)
	case "textDocument/codeAction":
		s.handleCodeAction(msg.ID, msg.Params)
	case "textDocument/documentSymbol":
		s.handleDocumentSymbol(msg.ID, msg.Params)
	case "workspace/symbol":
		s.handleWorkspaceSymbol(msg.ID, msg.Params)
	default:
		if len(msg.ID) > 0 {
			s.replyError(msg.ID, -32601, "method not found: "+msg.Method)
		}
	}
}

func (s *Server) reply(id json.RawMessage, result any) {
	body, err := json.Marshal(result)
	if err != nil {
		s.replyError(id, -32603, err.Error())
		return
	}
	if err := s.w.Write(&jsonrpc.Message{ID: id, Result: body}); err != nil {
		log.Printf("lsp: write response: %v", err)
	}
}

func (s *Server) replyError(id json.RawMessage, code int, message string) {
	_ = s.w.Write(&jsonrpc.Message{ID: id, Error: &jsonrpc.Error{Code: code, Message: message}})
}

func (s *Server) notify(method string, params any) {
	body, _ := json.Marshal(params)
	_ = s.w.Write(&jsonrpc.Message{Method: method, Params: body})
}

func initializeResult() map[string]any {
	return map[string]any{
		"capabilities": map[string]any{
			"textDocumentSync":           1, // Full: DocumentStore.Change replaces the whole text per edit
			"hoverProvider":              true,
			"completionProvider":         map[string]any{"triggerCharacters": []string{".", "@", ":"}},
			"definitionProvider":         true,
			"referencesProvider":         true,
			"renameProvider":             map[string]any{"prepareProvider": true},
			"documentSymbolProvider":     true,
			"workspaceSymbolProvider":    true,
			"codeActionProvider":         true,
			"semanticTokensProvider": map[string]any{
				"legend": map[string]any{"tokenTypes": SemanticTokenTypes, "tokenModifiers": []string{}},
				"full":   true,
			},
		},
		"serverInfo": map[string]any{"name": "vize-lsp"},
	}
}
