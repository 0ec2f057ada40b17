package transform

import (
	"strings"

	"github.com/vizehq/vize/template"
)

// Patch-flag bit constants (spec.md §4.F.6).
const (
	PatchText           = 1
	PatchClass          = 2
	PatchStyle          = 4
	PatchProps          = 8
	PatchFullProps      = 16
	PatchNeedHydration  = 32
	PatchStableFragment = 64
	PatchNeedPatch      = 512
)

var mouseButtonEventRename = map[string]string{
	"click.right":  "contextmenu",
	"click.middle": "mouseup",
}

var eventOptionModifiers = map[string]bool{
	"capture": true, "once": true, "passive": true,
}

// computePatchFlags is pass 6 (spec.md §4.F.6).
func computePatchFlags(el *template.Element) {
	var flag int
	var dynamicProps []string
	hasMiscDirective := false

	for _, p := range el.Props {
		d, ok := p.(*template.Directive)
		if !ok {
			continue
		}
		switch d.Name {
		case "bind":
			if d.Arg == nil || !d.Arg.IsStatic {
				flag |= PatchFullProps
				continue
			}
			switch d.Arg.Content {
			case "class":
				flag |= PatchClass
			case "style":
				flag |= PatchStyle
			default:
				flag |= PatchProps
				name := transformedPropName(d)
				dynamicProps = append(dynamicProps, name)
				if hasModifier(d, "prop") {
					flag |= PatchNeedHydration
				}
			}
		case "on":
			if needsHydrationForEvent(el, d) {
				flag |= PatchNeedHydration
			}
		case "show":
			hasMiscDirective = true
		default:
			hasMiscDirective = true
		}
	}

	if flag == 0 {
		flag |= computeTextFlag(el)
	}
	if flag == 0 && (hasRefAttr(el) || hasMiscDirective) {
		flag |= PatchNeedPatch
	}

	el.PatchFlag = flag
	el.DynamicProps = dynamicProps
}

func computeTextFlag(el *template.Element) int {
	if len(el.Children) == 0 {
		return 0
	}
	hasDynamicInterp := false
	for _, c := range el.Children {
		switch cc := c.(type) {
		case *template.Interpolation:
			if !cc.Expression.IsStatic {
				hasDynamicInterp = true
			}
		case *template.Text:
		default:
			return 0
		}
	}
	if hasDynamicInterp {
		return PatchText
	}
	return 0
}

func hasRefAttr(el *template.Element) bool {
	for _, p := range el.Props {
		if a, ok := p.(*template.Attribute); ok && a.Name == "ref" {
			return true
		}
	}
	return false
}

func hasModifier(d *template.Directive, mod string) bool {
	for _, m := range d.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

// transformedPropName applies the .camel/.prop/.attr modifier transforms
// to a dynamic bind's prop name (spec.md §4.F.6).
func transformedPropName(d *template.Directive) string {
	name := d.Arg.Content
	for _, mod := range d.Modifiers {
		switch mod {
		case "camel":
			name = camelize(name)
		case "prop":
			name = "." + name
		case "attr":
			name = "^" + name
		}
	}
	return name
}

func camelize(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(r - ('a' - 'A'))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// needsHydrationForEvent reports whether an event-handler bind needs
// NEED_HYDRATION: non-trivial handlers on DOM elements, excluding plain
// click/dblclick, update:* (component v-model listeners), and any
// component event (spec.md §4.F.6).
func needsHydrationForEvent(el *template.Element, d *template.Directive) bool {
	if el.TagKind == template.Component {
		return false
	}
	if d.Arg == nil {
		return true
	}
	event := d.Arg.Content
	if strings.HasPrefix(event, "update:") {
		return false
	}
	if (event == "click" || event == "dblclick") && len(d.Modifiers) == 0 {
		return false
	}
	return true
}

// renameMouseEvent applies click.right/click.middle event renaming and
// capitalizes capture/once/passive option modifiers into the event name
// (spec.md §4.F.6). Returns the final event name codegen should emit.
func renameMouseEvent(event string, modifiers []string) string {
	for _, mod := range modifiers {
		if renamed, ok := mouseButtonEventRename[event+"."+mod]; ok {
			event = renamed
		}
	}
	name := "on" + strings.ToUpper(event[:1]) + event[1:]
	for _, mod := range modifiers {
		if eventOptionModifiers[mod] {
			name += strings.ToUpper(mod[:1]) + mod[1:]
		}
	}
	return name
}
