package transform

import "github.com/vizehq/vize/template"

// expandVModel is pass 4 (spec.md §4.F.4).
func expandVModel(el *template.Element) {
	d := findDirective(el, "model")
	if d == nil {
		return
	}
	arg := "modelValue"
	if d.Arg != nil && d.Arg.Content != "" {
		arg = d.Arg.Content
	}
	el.Props = removeDirective(el.Props, "model")

	if el.TagKind == template.Component {
		el.Props = append(el.Props, &template.Directive{
			Name: "bind",
			Arg:  template.NewSimpleExpression(arg, true, d.Loc),
			Exp:  d.Exp,
			Loc:  d.Loc,
		})
		handlerBody := "$event => ((" + d.Exp.Content + ") = $event)"
		el.Props = append(el.Props, &template.Directive{
			Name: "on",
			Arg:  template.NewSimpleExpression("update:"+arg, true, d.Loc),
			Exp:  template.NewSimpleExpression(handlerBody, false, d.Loc),
			Loc:  d.Loc,
		})
		if len(d.Modifiers) > 0 {
			mods := "{ "
			for i, mod := range d.Modifiers {
				if i > 0 {
					mods += ", "
				}
				mods += mod + ": true"
			}
			mods += " }"
			el.Props = append(el.Props, &template.Directive{
				Name: "bind",
				Arg:  template.NewSimpleExpression(arg+"Modifiers", true, d.Loc),
				Exp:  template.NewSimpleExpression(mods, false, d.Loc),
				Loc:  d.Loc,
			})
		}
		return
	}

	// Native element: keep the v-model directive (codegen emits
	// vModelText/vModelSelect/vModelCheckbox/vModelRadio/vModelDynamic via
	// withDirectives) and append the update listener.
	el.Props = append(el.Props, d)
	handlerBody := buildNativeHandlerBody(d)
	event := "update:modelValue"
	for _, mod := range d.Modifiers {
		if mod == "lazy" {
			event = "change"
		}
	}
	el.Props = append(el.Props, &template.Directive{
		Name: "on",
		Arg:  template.NewSimpleExpression(event, true, d.Loc),
		Exp:  template.NewSimpleExpression(handlerBody, false, d.Loc),
		Loc:  d.Loc,
	})
}

// buildNativeHandlerBody applies the number/trim modifiers to the
// assignment body (spec.md §4.F.4: "modifiers number, trim, lazy adjust
// the handler body").
func buildNativeHandlerBody(d *template.Directive) string {
	rhs := "$event.target.value"
	for _, mod := range d.Modifiers {
		switch mod {
		case "number":
			rhs = "_toNumber(" + rhs + ")"
		case "trim":
			rhs = rhs + ".trim()"
		}
	}
	return "$event => ((" + d.Exp.Content + ") = " + rhs + ")"
}
