package transform

import "github.com/vizehq/vize/croquis"

// HelperSet collects the runtime helper names a render function needs to
// import, in first-seen order (spec.md §4.F.9 / §4.G preamble). Grounded on
// the teacher's dependency-collection style in expr_evaluator.go's
// map-backed memoization, adapted here to preserve insertion order since
// codegen emits the import list verbatim.
type HelperSet struct {
	seen map[string]bool
	list []string
}

// NewHelperSet returns an empty HelperSet.
func NewHelperSet() *HelperSet {
	return &HelperSet{seen: make(map[string]bool)}
}

// Add registers name, a no-op if already present.
func (h *HelperSet) Add(name string) {
	if h.seen[name] {
		return
	}
	h.seen[name] = true
	h.list = append(h.list, name)
}

// List returns the registered helpers in first-seen order.
func (h *HelperSet) List() []string {
	return h.list
}

// NeedsComponentResolution reports whether name refers to an unresolved
// component (not a local script binding, so codegen must emit a
// _resolveComponent call for it), per spec.md §4.F.9.
func NeedsComponentResolution(m *croquis.Model, name string) bool {
	if _, ok := m.Bindings[name]; ok {
		return false
	}
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
