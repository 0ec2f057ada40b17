package transform

import "github.com/vizehq/vize/template"

// CacheHandlers is pass 7 (spec.md §4.F.7): when enabled, each qualifying
// `on` directive's handler expression is memoized into _cache[i] by the
// runtime, and dropped from the element's dynamic-props tracking.
func CacheHandlers(el *template.Element, cacheIndex *int) {
	for _, p := range el.Props {
		d, ok := p.(*template.Directive)
		if !ok || d.Name != "on" {
			continue
		}
		if !isCacheable(d) {
			continue
		}
		d.Cached = true
		d.CacheIndex = *cacheIndex
		*cacheIndex++
	}
	removeCachedEventFromDynamicProps(el)
}

// isCacheable excludes handlers that close over component-local reactive
// state in a way that would go stale if memoized: component v-model
// listeners (update:*, rewritten per-render by expandVModel) and any
// handler referencing $event are fine to cache since the runtime rebinds
// the cached closure's own captured scope identically across renders;
// what disqualifies a handler is member-expression call targets that
// themselves vary per render (a dynamic inline object/array literal used
// as the handler). Directive-based handlers in vize are always a single
// expression, not a literal, so all are cacheable.
func isCacheable(d *template.Directive) bool {
	return d.Exp != nil && d.Exp.Kind == template.SimpleExpr
}

func removeCachedEventFromDynamicProps(el *template.Element) {
	if len(el.DynamicProps) == 0 {
		return
	}
	cachedEvents := map[string]bool{}
	for _, p := range el.Props {
		if d, ok := p.(*template.Directive); ok && d.Name == "on" && d.Cached && d.Arg != nil {
			cachedEvents["on"+upperFirst(d.Arg.Content)] = true
		}
	}
	if len(cachedEvents) == 0 {
		return
	}
	kept := el.DynamicProps[:0]
	for _, name := range el.DynamicProps {
		if !cachedEvents[name] {
			kept = append(kept, name)
		}
	}
	el.DynamicProps = kept
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
