package arena

// CompactString inline-stores strings up to compactInline bytes (24, per
// spec.md 4.A) without touching the arena pool; longer strings spill into
// it. Used for every binding, tag, and directive name, which are almost
// always short identifiers.
type CompactString struct {
	inline [compactInline]byte
	length int
	spill  string
}

// NewCompactString builds a CompactString, interning into a if s overflows
// the inline capacity.
func NewCompactString(a *Arena, s string) CompactString {
	if len(s) <= compactInline {
		var cs CompactString
		cs.length = copy(cs.inline[:], s)
		return cs
	}
	return CompactString{length: -1, spill: a.AllocString(s)}
}

// String returns the stored value, regardless of storage mode.
func (c CompactString) String() string {
	if c.length < 0 {
		return c.spill
	}
	return string(c.inline[:c.length])
}

// Len reports the length in bytes.
func (c CompactString) Len() int {
	if c.length < 0 {
		return len(c.spill)
	}
	return c.length
}

// Spilled reports whether the value overflowed inline storage.
func (c CompactString) Spilled() bool { return c.length < 0 }

// Equal compares two CompactStrings by value.
func (c CompactString) Equal(o CompactString) bool {
	return c.String() == o.String()
}
