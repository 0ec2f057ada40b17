// Package tsclient implements the thin JSON-RPC client to an external
// TypeScript language server (spec.md §4.J/§6: "a thin JSON-RPC client
// over stdin/stdout... Content-Length framing, keeps a request-id
// counter, parses responses, caches published diagnostics per URI, and
// degrades gracefully"). Request ids are correlated with
// github.com/rs/xid, grounded on buke-esbuild-plugin-vue-go's
// `xid.New().String()` request-id pattern (vue.go, sass.go).
package tsclient

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/vizehq/vize/lsp/jsonrpc"
)

// Diagnostic mirrors the subset of an LSP Diagnostic the core cares about
// (spec.md §4.J: "Severity mapping is Error→Error, Warning→Warning,
// Info→Info, Hint→Hint").
type Diagnostic struct {
	Message  string
	Severity int
	Start    int
	End      int
}

// Client manages one external TS server child process. A nil *Client (or
// one whose process failed to start) means "no TS server reachable" — every
// method degrades to a zero value rather than an error, per spec.md's
// "no TS server → skip TS-origin results".
type Client struct {
	cmd      *exec.Cmd
	w        *jsonrpc.Writer
	r        *jsonrpc.Reader
	timeout  time.Duration
	mu       sync.Mutex
	pending  map[string]chan *jsonrpc.Message
	diagsMu  sync.Mutex
	diagsets map[string][]Diagnostic
}

// ResolveExecutable searches for the TS server executable in the order
// spec.md §6 names: an explicit path, $TSGO_PATH, common global-install
// locations, then PATH.
func ResolveExecutable(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("TSGO_PATH"); p != "" {
		return p
	}
	for _, candidate := range []string{
		os.ExpandEnv("$HOME/.npm-global/bin/tsgo"),
		"/opt/homebrew/bin/tsgo",
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	if p, err := exec.LookPath("tsgo"); err == nil {
		return p
	}
	return ""
}

// Start launches the TS server at path with `--lsp --stdio` and performs
// the initialize/initialized handshake. Returns a nil *Client (not an
// error) if path is empty or the process can't be started, so callers
// always get the graceful-degradation Client.
func Start(path string, timeout time.Duration) *Client {
	if path == "" {
		return nil
	}
	cmd := exec.Command(path, "--lsp", "--stdio")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil
	}
	if err := cmd.Start(); err != nil {
		return nil
	}

	c := &Client{
		cmd:      cmd,
		w:        jsonrpc.NewWriter(stdin),
		r:        jsonrpc.NewReader(stdout),
		timeout:  timeout,
		pending:  make(map[string]chan *jsonrpc.Message),
		diagsets: make(map[string][]Diagnostic),
	}
	go c.readLoop()
	c.notify("initialize", map[string]any{"processId": os.Getpid()})
	c.notify("initialized", map[string]any{})
	return c
}

// readLoop demultiplexes incoming framed messages by id into one-shot
// completion channels, and dispatches publishDiagnostics notifications
// into the per-URI cache (spec.md §5: "one dedicated reader thread...
// demultiplexing by id into one-shot completion slots and a notification
// dispatcher").
func (c *Client) readLoop() {
	for {
		msg, err := c.r.Read()
		if err != nil {
			return
		}
		if msg.Method == "textDocument/publishDiagnostics" {
			c.handleDiagnostics(msg.Params)
			continue
		}
		if len(msg.ID) == 0 {
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[string(msg.ID)]
		if ok {
			delete(c.pending, string(msg.ID))
		}
		c.mu.Unlock()
		if ok {
			ch <- msg
		}
	}
}

type publishDiagnosticsParams struct {
	URI         string `json:"uri"`
	Diagnostics []struct {
		Message  string `json:"message"`
		Severity int    `json:"severity"`
		Range    struct {
			Start struct{ Line, Character int } `json:"start"`
			End   struct{ Line, Character int } `json:"end"`
		} `json:"range"`
	} `json:"diagnostics"`
}

func (c *Client) handleDiagnostics(raw json.RawMessage) {
	var p publishDiagnosticsParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return
	}
	var out []Diagnostic
	for _, d := range p.Diagnostics {
		out = append(out, Diagnostic{Message: d.Message, Severity: d.Severity})
	}
	c.diagsMu.Lock()
	c.diagsets[p.URI] = out
	c.diagsMu.Unlock()
}

// Diagnostics returns the last diagnostics set published for uri.
func (c *Client) Diagnostics(uri string) []Diagnostic {
	if c == nil {
		return nil
	}
	c.diagsMu.Lock()
	defer c.diagsMu.Unlock()
	return c.diagsets[uri]
}

func (c *Client) notify(method string, params any) {
	if c == nil {
		return
	}
	body, _ := json.Marshal(params)
	_ = c.w.Write(&jsonrpc.Message{Method: method, Params: body})
}

// request sends method/params as a request, waits up to c.timeout for the
// matching response, and returns its raw Result. Times out (releasing the
// pending slot) rather than blocking forever (spec.md §5: "Timeouts bound
// completion waits; on timeout the slot is released and the caller falls
// back").
func (c *Client) request(method string, params any) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("tsclient: no server")
	}
	id := xid.New().String()
	ch := make(chan *jsonrpc.Message, 1)
	c.mu.Lock()
	c.pending[`"`+id+`"`] = ch
	c.mu.Unlock()

	body, _ := json.Marshal(params)
	idJSON, _ := json.Marshal(id)
	if err := c.w.Write(&jsonrpc.Message{ID: idJSON, Method: method, Params: body}); err != nil {
		return nil, err
	}

	select {
	case msg := <-ch:
		if msg.Error != nil {
			return nil, msg.Error
		}
		return msg.Result, nil
	case <-time.After(c.timeout):
		c.mu.Lock()
		delete(c.pending, `"`+id+`"`)
		c.mu.Unlock()
		return nil, fmt.Errorf("tsclient: request %s timed out", method)
	}
}

// DidOpen notifies the TS server of a newly opened virtual document.
func (c *Client) DidOpen(uri, languageID, text string, version int) {
	c.notify("textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{
			"uri": uri, "languageId": languageID, "version": version, "text": text,
		},
	})
}

// DidClose notifies the TS server a virtual document was closed.
func (c *Client) DidClose(uri string) {
	c.notify("textDocument/didClose", map[string]any{
		"textDocument": map[string]any{"uri": uri},
	})
}

// Hover requests hover info at a 0-based line/character position.
func (c *Client) Hover(uri string, line, character int) (json.RawMessage, error) {
	return c.request("textDocument/hover", map[string]any{
		"textDocument": map[string]any{"uri": uri},
		"position":     map[string]any{"line": line, "character": character},
	})
}

// PullDiagnostics issues an LSP 3.17 pull-diagnostics request.
func (c *Client) PullDiagnostics(uri string) (json.RawMessage, error) {
	return c.request("textDocument/diagnostic", map[string]any{
		"textDocument": map[string]any{"uri": uri},
	})
}

// Shutdown sends shutdown then exit and waits for the child to exit,
// ignoring failures (spec.md §5).
func (c *Client) Shutdown() {
	if c == nil {
		return
	}
	_, _ = c.request("shutdown", nil)
	c.notify("exit", nil)
	_ = c.cmd.Wait()
}
