package codegen

import (
	"strings"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
)

// ResolveAssets walks the final tree collecting component/custom-directive
// names needing runtime resolution (spec.md §4.G "asset resolution"),
// skipping any name already visible as a script binding
// (transform.NeedsComponentResolution makes the same call during helper
// registration; this is the codegen-side pass that actually emits the
// `const _component_x = _resolveComponent("x")` declarations).
func ResolveAssets(children []template.Node, m *croquis.Model) (components, directives []string) {
	seenC, seenD := map[string]bool{}, map[string]bool{}
	var walk func([]template.Node)
	walk = func(nodes []template.Node) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *template.Element:
				if v.TagKind == template.Component {
					if _, bound := m.Bindings[v.Tag]; !bound && !seenC[v.Tag] {
						seenC[v.Tag] = true
						components = append(components, v.Tag)
					}
				}
				for _, p := range v.Props {
					if d, ok := p.(*template.Directive); ok && isCustomDirective(d.Name) && !seenD[d.Name] {
						seenD[d.Name] = true
						directives = append(directives, d.Name)
					}
				}
				walk(v.Children)
			case *template.If:
				for _, b := range v.Branches {
					walk(b.Children)
				}
			case *template.For:
				walk(v.Children)
			}
		}
	}
	walk(children)
	return components, directives
}

var builtinDirectives = map[string]bool{
	"if": true, "else": true, "else-if": true, "for": true, "on": true,
	"bind": true, "model": true, "slot": true, "text": true, "html": true,
	"show": true, "once": true, "pre": true, "cloak": true,
}

func isCustomDirective(name string) bool {
	return !builtinDirectives[name]
}

// WriteAssetResolution emits the asset-resolution preamble lines (spec.md
// §4.G: "for each remaining component name, emit const
// _component_<safeName> = _resolveComponent(...); for each directive,
// analogous").
func WriteAssetResolution(w *strings.Builder, components, directives []string) {
	for _, c := range components {
		w.WriteString("const " + helperRef("component_"+safeIdent(c)) + " = " + helperRef("resolveComponent") + "(" + jsString(c) + ")\n")
	}
	for _, d := range directives {
		w.WriteString("const " + helperRef("directive_"+safeIdent(d)) + " = " + helperRef("resolveDirective") + "(" + jsString(d) + ")\n")
	}
}
