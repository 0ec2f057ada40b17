package lsp

import (
	"io/fs"
	"sort"
)

// overlayFS layers the editor's in-memory, unsaved document contents (Upper)
// over the last-saved-to-disk tree (Lower). The workspace/symbol handler
// reads through this (via DocumentStore.FS), so an edited-but-unsaved SFC
// is searched with its current text; hover, completion and diagnostics
// work from the open document alone.
type overlayFS struct {
	Upper fs.FS
	Lower fs.FS
}

// newOverlayFS builds an *overlayFS from the live document store and a disk root.
func newOverlayFS(upper, lower fs.FS) *overlayFS {
	return &overlayFS{
		Upper: upper,
		Lower: lower,
	}
}

// Open opens a file in the overlaid filesystem, preferring Upper.
func (o *overlayFS) Open(name string) (fs.File, error) {
	if o.Upper != nil {
		f, err := o.Upper.Open(name)
		if err == nil {
			return f, nil
		}
	}
	if o.Lower != nil {
		return o.Lower.Open(name)
	}
	return nil, fs.ErrNotExist
}

// ReadDir implements combined FS reading, upper entries override lower ones.
func (o *overlayFS) ReadDir(name string) ([]fs.DirEntry, error) {
	var upperDir []fs.DirEntry
	var upperErr error
	var lowerDir []fs.DirEntry
	var lowerErr error

	if o.Upper != nil {
		upperDir, upperErr = fs.ReadDir(o.Upper, name)
	} else {
		upperErr = fs.ErrNotExist
	}

	if o.Lower != nil {
		lowerDir, lowerErr = fs.ReadDir(o.Lower, name)
	} else {
		lowerErr = fs.ErrNotExist
	}

	if upperErr != nil && lowerErr != nil {
		return nil, upperErr
	}

	merged := make(map[string]fs.DirEntry)
	for _, e := range lowerDir {
		merged[e.Name()] = e
	}
	for _, e := range upperDir {
		merged[e.Name()] = e
	}

	entries := make([]fs.DirEntry, 0, len(merged))
	for _, e := range merged {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// Glob implements combined FS globbing across both layers.
func (o *overlayFS) Glob(pattern string) ([]string, error) {
	var upperMatches []string
	if o.Upper != nil {
		upperMatches, _ = fs.Glob(o.Upper, pattern)
	}

	var lowerMatches []string
	if o.Lower != nil {
		lowerMatches, _ = fs.Glob(o.Lower, pattern)
	}

	matchMap := make(map[string]struct{})
	for _, m := range lowerMatches {
		matchMap[m] = struct{}{}
	}
	for _, m := range upperMatches {
		matchMap[m] = struct{}{}
	}

	results := make([]string, 0, len(matchMap))
	for m := range matchMap {
		results = append(results, m)
	}

	sort.Strings(results)
	return results, nil
}
