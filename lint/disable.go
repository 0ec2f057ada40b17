package lint

import (
	"strings"

	"github.com/vizehq/vize/template"
)

// disableKind distinguishes the inline-disable comment forms spec.md
// §4.I names: a block toggle (disable until a matching enable, or end of
// document) and a single-line toggle (disable only the next sibling's span).
type disableKind int

const (
	disableBlock disableKind = iota
	disableNextLine
	enableBlock
)

type disableEntry struct {
	kind  disableKind
	rules map[string]bool // nil/empty means "all rules"
	start int
	end   int // only meaningful outside disableNextLine; -1 = open-ended
}

// DisableMap tracks `<!-- vize-disable[-next-line] [rule...] -->` /
// `<!-- vize-enable ... -->` comments (spec.md §4.I) so Run can filter
// diagnostics that fall inside a disabled span.
type DisableMap struct {
	entries []disableEntry
}

// BuildDisableMap scans root's comments, resolving each directive's span:
// a bare `vize-disable` opens a region closed by the next matching
// `vize-enable` (or the end of the document); `vize-disable-next-line`
// covers only the following sibling's byte span.
func BuildDisableMap(root *template.Root) *DisableMap {
	dm := &DisableMap{}
	template.Walk(root.Children, func(node template.Node, path []template.PathEntry) {
		c, ok := node.(*template.Comment)
		if !ok {
			return
		}
		kind, rules, ok := parseDisableComment(c.Content)
		if !ok {
			return
		}
		switch kind {
		case disableNextLine:
			if len(path) == 0 {
				return
			}
			siblings := *path[len(path)-1].Parent
			idx := indexOf(siblings, c)
			if next, ok := nextSignificantSibling(siblings, idx); ok {
				loc := next.Location()
				dm.entries = append(dm.entries, disableEntry{
					kind: disableNextLine, rules: rules,
					start: loc.Span.Start, end: loc.Span.End,
				})
			}
		case disableBlock:
			dm.entries = append(dm.entries, disableEntry{
				kind: disableBlock, rules: rules,
				start: c.Loc.Span.Start, end: -1,
			})
		case enableBlock:
			dm.closeOpenBlocks(rules, c.Loc.Span.Start)
		}
	})
	return dm
}

// closeOpenBlocks closes every still-open disableBlock entry whose rule
// set intersects rules (or every open entry, if rules is empty — a bare
// `vize-enable`), setting its end to pos.
func (dm *DisableMap) closeOpenBlocks(rules map[string]bool, pos int) {
	for i := range dm.entries {
		e := &dm.entries[i]
		if e.kind != disableBlock || e.end != -1 {
			continue
		}
		if len(rules) == 0 || ruleSetsIntersect(e.rules, rules) {
			e.end = pos
		}
	}
}

func ruleSetsIntersect(a, b map[string]bool) bool {
	if len(a) == 0 || len(b) == 0 {
		return true // empty means "all rules"
	}
	for r := range a {
		if b[r] {
			return true
		}
	}
	return false
}

// IsDisabled reports whether rule's violation at byte offset pos falls
// inside an active disable entry.
func (dm *DisableMap) IsDisabled(rule string, pos int) bool {
	if dm == nil {
		return false
	}
	for _, e := range dm.entries {
		if len(e.rules) > 0 && !e.rules[rule] {
			continue
		}
		end := e.end
		if end == -1 {
			end = 1<<62 - 1
		}
		if pos >= e.start && pos < end {
			return true
		}
	}
	return false
}

func parseDisableComment(content string) (disableKind, map[string]bool, bool) {
	fields := strings.Fields(strings.TrimSpace(content))
	if len(fields) == 0 {
		return 0, nil, false
	}
	var kind disableKind
	switch fields[0] {
	case "vize-disable-next-line":
		kind = disableNextLine
	case "vize-disable":
		kind = disableBlock
	case "vize-enable":
		kind = enableBlock
	default:
		return 0, nil, false
	}
	var rules map[string]bool
	if len(fields) > 1 {
		rules = make(map[string]bool, len(fields)-1)
		for _, r := range fields[1:] {
			rules[r] = true
		}
	}
	return kind, rules, true
}

func nextSignificantSibling(nodes []template.Node, idx int) (template.Node, bool) {
	for i := idx + 1; i < len(nodes); i++ {
		if _, isComment := nodes[i].(*template.Comment); isComment {
			continue
		}
		if t, isText := nodes[i].(*template.Text); isText && strings.TrimSpace(t.Content) == "" {
			continue
		}
		return nodes[i], true
	}
	return nil, false
}
