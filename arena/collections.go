package arena

// Vec is an arena-scoped, insertion-ordered sequence. It is a thin wrapper
// over a Go slice: Go's GC already reclaims the backing array when the
// Arena it was built from is dropped, so Vec exists to mark call sites that
// the spec's data model treats as arena-owned rather than to implement a
// bespoke allocator.
type Vec[T any] struct {
	items []T
}

// NewVec returns an empty Vec with the given capacity hint.
func NewVec[T any](capHint int) Vec[T] {
	return Vec[T]{items: make([]T, 0, capHint)}
}

// Push appends v, returning its index.
func (v *Vec[T]) Push(val T) int {
	v.items = append(v.items, val)
	return len(v.items) - 1
}

// Get returns the element at i.
func (v *Vec[T]) Get(i int) T { return v.items[i] }

// Set overwrites the element at i.
func (v *Vec[T]) Set(i int, val T) { v.items[i] = val }

// Len reports the number of elements.
func (v *Vec[T]) Len() int { return len(v.items) }

// Slice exposes the underlying slice for iteration. Callers must not retain
// it past the Arena's lifetime.
func (v *Vec[T]) Slice() []T { return v.items }

// smallVecInline is the inline capacity before SmallVec spills to a slice.
// Go has no const-generic array sizes, so unlike the spec's SmallVec<T, N>
// this is a single package constant rather than a per-instantiation N;
// spec.md 4.A's default of N=4 (directive modifiers, scope parameter
// lists) is the only size this codebase ever needs.
const smallVecInline = 4

// SmallVec stores up to smallVecInline elements inline (in an array, no
// allocation) and spills to a slice once it grows past that.
type SmallVec[T any] struct {
	inline   [smallVecInline]T
	inlineN  int
	overflow []T
}

// Push appends val, staying inline until the 4-element capacity is exceeded.
func (s *SmallVec[T]) Push(val T) {
	if s.overflow == nil && s.inlineN < len(s.inline) {
		s.inline[s.inlineN] = val
		s.inlineN++
		return
	}
	if s.overflow == nil {
		s.overflow = make([]T, s.inlineN, s.inlineN*2+1)
		copy(s.overflow, s.inline[:s.inlineN])
	}
	s.overflow = append(s.overflow, val)
}

// Len reports the number of elements, inline or spilled.
func (s *SmallVec[T]) Len() int {
	if s.overflow != nil {
		return len(s.overflow)
	}
	return s.inlineN
}

// Get returns the element at i.
func (s *SmallVec[T]) Get(i int) T {
	if s.overflow != nil {
		return s.overflow[i]
	}
	return s.inline[i]
}

// Slice materializes the elements as a plain slice (inline copy if not
// spilled).
func (s *SmallVec[T]) Slice() []T {
	if s.overflow != nil {
		return s.overflow
	}
	return append([]T(nil), s.inline[:s.inlineN]...)
}

// Map is an insertion-ordered string-keyed map. Go's builtin map has
// unspecified iteration order, so where the spec requires insertion order
// to be observable (e.g. prop emission order in codegen) we track a
// parallel key slice rather than relying on map ranging.
type Map[V any] struct {
	index map[string]int
	keys  []string
	vals  []V
}

// NewMap returns an empty, insertion-ordered Map.
func NewMap[V any]() Map[V] {
	return Map[V]{index: make(map[string]int)}
}

// Set inserts or overwrites key's value, preserving first-insertion order.
func (m *Map[V]) Set(key string, val V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = val
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Get returns the value for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len reports the number of entries.
func (m *Map[V]) Len() int { return len(m.keys) }

// Keys returns keys in insertion order. Callers must not mutate the result.
func (m *Map[V]) Keys() []string { return m.keys }

// Each walks entries in insertion order.
func (m *Map[V]) Each(fn func(key string, val V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}
