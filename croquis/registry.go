package croquis

// FileID identifies one analyzed Vue file by its resolved path, used as the
// key into the cross-file Registry (spec.md §3).
type FileID string

// ModuleEntry is one node of the cross-file dependency graph.
type ModuleEntry struct {
	Analysis *Model
	Exports  []string
	Imports  []string
}

// Registry is a FileId -> ModuleEntry map forming a DAG of imports between
// Vue files, used only by cross-file diagnostics (spec.md §3). Entries are
// copy-on-write per file per spec.md §5's resource policy: updating one
// file's entry never mutates another's.
type Registry struct {
	entries map[FileID]*ModuleEntry
}

// NewRegistry returns an empty cross-file registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[FileID]*ModuleEntry)}
}

// Set records (or replaces) the entry for id with a fresh copy, so callers
// already holding a previously-returned *ModuleEntry keep seeing the old
// value.
func (r *Registry) Set(id FileID, entry *ModuleEntry) {
	cp := *entry
	r.entries[id] = &cp
}

// Get returns the entry for id, if analyzed.
func (r *Registry) Get(id FileID) (*ModuleEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Dependents returns every FileID whose Imports list contains id, used to
// invalidate/re-diagnose dependents when id's exports change.
func (r *Registry) Dependents(id FileID) []FileID {
	var out []FileID
	for fid, entry := range r.entries {
		for _, imp := range entry.Imports {
			if FileID(imp) == id {
				out = append(out, fid)
				break
			}
		}
	}
	return out
}

// CrossFileDiagnostic is a reactivity-loss (or similar) diagnostic that
// spans module boundaries (spec.md §7).
type CrossFileDiagnostic struct {
	File       FileID
	Message    string
	Suggestion string
}

// ReactivityLossDiagnostics synthesizes one CrossFileDiagnostic per
// Reactivity.Losses entry recorded against id's Model, each suggesting
// `toRefs` for ReactiveDestructure losses (the concrete scenario named in
// spec.md §8's scenario 6).
func (r *Registry) ReactivityLossDiagnostics(id FileID) []CrossFileDiagnostic {
	entry, ok := r.entries[id]
	if !ok || entry.Analysis == nil {
		return nil
	}
	var diags []CrossFileDiagnostic
	for _, loss := range entry.Analysis.Reactivity.Losses {
		msg := loss.Kind.String() + " of " + loss.SourceName
		suggestion := ""
		if loss.Kind == ReactiveDestructure {
			suggestion = "wrap the destructure in toRefs(" + loss.SourceName + ") to preserve reactivity"
		}
		diags = append(diags, CrossFileDiagnostic{File: id, Message: msg, Suggestion: suggestion})
	}
	return diags
}
