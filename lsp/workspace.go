package lsp

import (
	"io/fs"
	"strings"
	"testing/fstest"
)

// documentsFS exposes every currently open document as an in-memory
// fs.FS, suitable as overlayFS's Upper layer (spec.md §4.J: "hover/
// completion/diagnostics... resolve sibling SFCs through an overlay of
// live edits over the on-disk tree").
func (s *DocumentStore) documentsFS() fs.FS {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := fstest.MapFS{}
	for uri, d := range s.docs {
		name := strings.TrimPrefix(uri, "file://")
		name = strings.TrimPrefix(name, "/")
		if name == "" {
			continue
		}
		m[name] = &fstest.MapFile{Data: []byte(d.Text)}
	}
	return m
}

// FS returns the overlay filesystem combining open (possibly unsaved)
// documents over the on-disk tree rooted at root.
func (s *DocumentStore) FS(root fs.FS) fs.FS {
	return newOverlayFS(s.documentsFS(), root)
}

// SymbolInfo is one textDocument/documentSymbol or workspace/symbol entry.
type SymbolInfo struct {
	Name     string
	File     string
	IsVize   bool
}

// WorkspaceSymbols lists every `.vize` component under fsys whose name
// contains query (case-sensitive substring, matching spec.md §4.J's
// "workspace/symbol: component files matching the query").
func WorkspaceSymbols(fsys fs.FS, query string) ([]SymbolInfo, error) {
	var out []SymbolInfo
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".vize") {
			return nil
		}
		name := strings.TrimSuffix(pathBase(path), ".vize")
		if query == "" || strings.Contains(name, query) {
			out = append(out, SymbolInfo{Name: name, File: path, IsVize: true})
		}
		return nil
	})
	return out, err
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
