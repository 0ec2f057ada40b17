// Package arena provides the region allocator and arena-backed collection
// types shared by every compiler stage. A single Arena lives for the
// lifetime of one document compilation: every node, string, and collection
// field produced while compiling a .vize file is allocated from it and
// discarded in one shot when the document is recompiled or evicted.
package arena

import "fmt"

// compactInline is the inline capacity of a CompactString before it spills
// into the arena's string pool. Matches the identifier/tag/directive-name
// case the spec calls out as the common path.
const compactInline = 24

// Arena owns the backing storage for one document's compilation. It is not
// safe for concurrent use; callers compiling documents in parallel each get
// their own Arena (see the package doc on the root vize package).
type Arena struct {
	pool    []byte
	strings map[string]string
	exhausted bool
}

// New returns an Arena pre-sized for a source file of roughly sourceLen
// bytes. Sizing is a hint only; the pool grows as needed.
func New(sourceLen int) *Arena {
	cap := sourceLen * 2
	if cap < 256 {
		cap = 256
	}
	return &Arena{
		pool:    make([]byte, 0, cap),
		strings: make(map[string]string),
	}
}

// AllocString copies s into the arena's pool and returns the arena-owned
// copy. Equal strings are interned to the same backing array so identifier
// comparisons done elsewhere (e.g. Croquis binding lookups) can short-circuit
// on pointer-equal backing data when it matters for hot paths.
func (a *Arena) AllocString(s string) string {
	if s == "" {
		return ""
	}
	if interned, ok := a.strings[s]; ok {
		return interned
	}
	start := len(a.pool)
	a.pool = append(a.pool, s...)
	out := string(a.pool[start : start+len(s)])
	a.strings[s] = out
	return out
}

// Exhausted reports whether a prior allocation already tripped the fatal
// exhaustion boundary. Component entry points check this and abort rather
// than continuing to compile against a torn arena.
func (a *Arena) Exhausted() bool { return a.exhausted }

// MarkExhausted records an unrecoverable allocation failure. Per spec.md
// 4.A, allocator exhaustion is fatal at the component entry point that
// observes it; this just lets that boundary fail loudly instead of
// silently continuing with partial data.
func (a *Arena) MarkExhausted() {
	a.exhausted = true
}

// ExhaustionError is returned by component entry points when an Arena was
// marked exhausted mid-compile.
type ExhaustionError struct {
	Component string
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("arena: allocator exhausted during %s", e.Component)
}
