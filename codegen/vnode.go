package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vizehq/vize/template"
)

var patchFlagNames = []struct {
	bit  int
	name string
}{
	{1, "TEXT"}, {2, "CLASS"}, {4, "STYLE"}, {8, "PROPS"}, {16, "FULL_PROPS"},
	{32, "NEED_HYDRATION"}, {64, "STABLE_FRAGMENT"}, {512, "NEED_PATCH"},
}

func patchFlagComment(flag int) string {
	if flag == 0 {
		return ""
	}
	var names []string
	for _, f := range patchFlagNames {
		if flag&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return " /* " + strings.Join(names, ", ") + " */"
}

// writeHoists emits spec.md §4.G's hoist declarations: a full VNodeCall for
// a fully-static subtree, or a bare object literal for a props-only hoist
// (hoistPropsOnly stores a placeholder Element carrying only Props and no
// Tag, which is how this distinguishes the two shapes).
func (g *generator) writeHoists(w *strings.Builder, hoists []template.Node) {
	for i, h := range hoists {
		el, ok := h.(*template.Element)
		if !ok {
			continue
		}
		name := fmt.Sprintf("_hoisted_%d", i+1)
		if el.Tag == "" {
			w.WriteString("const " + name + " = " + propsObjectLiteral(el.Props) + "\n")
			continue
		}
		w.WriteString("const " + name + " = /*#__PURE__*/ " + g.elementVNodeCall(el) + "\n")
	}
}

// writeRenderFunction emits the render function per spec.md §4.G's
// signature table, returning a single root's expression wrapped in a
// block, or a Fragment block with STABLE_FRAGMENT for multiple roots.
func (g *generator) writeRenderFunction(w *strings.Builder, roots []template.Node) {
	w.WriteString(g.signature() + " {\n")
	w.WriteString("  return " + g.renderReturn(roots) + "\n")
	w.WriteString("}\n")
}

func (g *generator) signature() string {
	name := "render"
	params := "_ctx, _cache"
	switch g.opts.Mode {
	case ModeFunction:
		params = "_ctx, _cache, $props, $setup"
	case ModeSSR:
		name, params = "ssrRender", "_ctx, _push, _parent, _attrs"
	}
	return "export function " + name + "(" + params + ")"
}

func (g *generator) renderReturn(roots []template.Node) string {
	nodes := significantNodes(roots)
	if len(nodes) == 1 {
		return g.nodeExpr(nodes[0], true)
	}
	var parts []string
	for _, n := range nodes {
		parts = append(parts, g.nodeExpr(n, false))
	}
	return "(" + helperRef("openBlock") + "(), " + helperRef("createElementBlock") +
		"(" + helperRef("Fragment") + ", null, [" + strings.Join(parts, ", ") + "], 64" +
		patchFlagComment(64) + "))"
}

// significantNodes drops whitespace-only text between root siblings, the
// same filter structural.go's chain-walk applies to v-if/v-else lookahead.
func significantNodes(nodes []template.Node) []template.Node {
	var out []template.Node
	for _, n := range nodes {
		if t, ok := n.(*template.Text); ok && strings.TrimSpace(t.Content) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// nodeExpr serializes one template node into its VNodeCall expression.
// asBlock wraps an element root in the openBlock/createElementBlock pair
// spec.md §4.G calls for on the single-root path.
func (g *generator) nodeExpr(n template.Node, asBlock bool) string {
	switch v := n.(type) {
	case *template.Element:
		if asBlock {
			return "(" + helperRef("openBlock") + "(), " + g.blockCall(v) + ")"
		}
		return g.elementVNodeCall(v)
	case *template.Text:
		return jsString(v.Content)
	case *template.Interpolation:
		return helperRef("toDisplayString") + "(" + v.Expression.Content + ")"
	case *template.Comment:
		return helperRef("createCommentVNode") + "(" + jsString(v.Content) + ")"
	case *template.Hoisted:
		return fmt.Sprintf("_hoisted_%d", v.Index+1)
	case *template.If:
		return g.ifExpr(v)
	case *template.For:
		return g.forExpr(v)
	default:
		return "null"
	}
}

func (g *generator) blockCall(el *template.Element) string {
	helper := "createElementBlock"
	if el.TagKind == template.Component {
		helper = "createBlock"
	}
	return helperRef(helper) + "(" + g.vnodeArgs(el) + ")"
}

// elementVNodeCall emits a non-block createElementVNode/createVNode call:
// tag, props?, children?, patchFlag?, dynamicProps? with trailing nulls for
// any present following argument (spec.md §4.G VNodeCall serialization).
func (g *generator) elementVNodeCall(el *template.Element) string {
	helper := "createElementVNode"
	if el.TagKind == template.Component {
		helper = "createVNode"
	}
	return helperRef(helper) + "(" + g.vnodeArgs(el) + ")"
}

func (g *generator) vnodeArgs(el *template.Element) string {
	tag := tagArg(el)
	propsArg := g.propsArg(el)
	childrenArg := g.childrenArg(el)
	flagArg, dynArg := g.flagArgs(el)

	args := []string{tag}
	trailing := []string{propsArg, childrenArg, flagArg, dynArg}
	lastSet := -1
	for i, a := range trailing {
		if a != "" {
			lastSet = i
		}
	}
	for i := 0; i <= lastSet; i++ {
		if trailing[i] == "" {
			args = append(args, "null")
		} else {
			args = append(args, trailing[i])
		}
	}
	return strings.Join(args, ", ")
}

func tagArg(el *template.Element) string {
	if el.TagKind == template.Component {
		return "_component_" + safeIdent(el.Tag)
	}
	return jsString(el.Tag)
}

func (g *generator) propsArg(el *template.Element) string {
	if el.HasHoistedProps {
		return fmt.Sprintf("_hoisted_%d", el.HoistedPropsIndex+1)
	}
	if len(el.Props) == 0 {
		return ""
	}
	return propsObjectLiteral(el.Props)
}

func (g *generator) childrenArg(el *template.Element) string {
	nodes := significantNodes(el.Children)
	if len(nodes) == 0 {
		return ""
	}
	if len(nodes) == 1 {
		if t, ok := nodes[0].(*template.Text); ok {
			return jsString(t.Content)
		}
		if interp, ok := nodes[0].(*template.Interpolation); ok {
			return helperRef("toDisplayString") + "(" + interp.Expression.Content + ")"
		}
	}
	var parts []string
	for _, n := range nodes {
		parts = append(parts, g.nodeExpr(n, false))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (g *generator) flagArgs(el *template.Element) (flag, dyn string) {
	if el.PatchFlag == 0 {
		return "", ""
	}
	flag = strconv.Itoa(el.PatchFlag) + patchFlagComment(el.PatchFlag)
	if len(el.DynamicProps) > 0 {
		quoted := make([]string, len(el.DynamicProps))
		for i, p := range el.DynamicProps {
			quoted[i] = jsString(p)
		}
		dyn = "[" + strings.Join(quoted, ", ") + "]"
	}
	return flag, dyn
}

func (g *generator) ifExpr(n *template.If) string {
	var sb strings.Builder
	for i, b := range n.Branches {
		if i > 0 {
			sb.WriteString(" : ")
		}
		if b.Condition != nil {
			sb.WriteString("(" + b.Condition.Content + ")\n    ? ")
		}
		sb.WriteString(g.blockWrap(b.Children))
	}
	if n.Branches[len(n.Branches)-1].Condition != nil {
		sb.WriteString(" : " + helperRef("createCommentVNode") + "(\"v-if\", true)")
	}
	return sb.String()
}

func (g *generator) blockWrap(children []template.Node) string {
	nodes := significantNodes(children)
	if len(nodes) == 1 {
		return g.nodeExpr(nodes[0], true)
	}
	var parts []string
	for _, n := range nodes {
		parts = append(parts, g.nodeExpr(n, false))
	}
	return "(" + helperRef("openBlock") + "(), " + helperRef("createElementBlock") +
		"(" + helperRef("Fragment") + ", { key: 0 }, [" + strings.Join(parts, ", ") + "], 64 /* STABLE_FRAGMENT */))"
}

func (g *generator) forExpr(n *template.For) string {
	aliases := []string{n.ValueAlias}
	if n.KeyAlias != "" {
		aliases = append(aliases, n.KeyAlias)
	}
	if n.IndexAlias != "" {
		aliases = append(aliases, n.IndexAlias)
	}
	params := strings.Join(aliases, ", ")

	var body string
	if len(n.Children) == 1 {
		body = g.nodeExpr(n.Children[0], true)
	} else {
		var parts []string
		for _, c := range n.Children {
			parts = append(parts, g.nodeExpr(c, false))
		}
		body = "[" + strings.Join(parts, ", ") + "]"
	}

	return "(" + helperRef("openBlock") + "(true), " + helperRef("createElementBlock") +
		"(" + helperRef("Fragment") + ", null, " + helperRef("renderList") +
		"(" + n.Source.Content + ", (" + params + ") => {\n    return " + body + "\n  }), 128 /* KEYED_FRAGMENT */))"
}

func propsObjectLiteral(props []template.PropNode) string {
	var parts []string
	for _, p := range props {
		switch v := p.(type) {
		case *template.Attribute:
			val := ""
			if v.Value != nil {
				val = *v.Value
			}
			parts = append(parts, jsKey(v.Name)+": "+jsString(val))
		case *template.Directive:
			if v.Name != "bind" || v.Arg == nil || v.Exp == nil {
				continue
			}
			key := v.Arg.Content
			if v.Arg.IsStatic {
				parts = append(parts, jsKey(key)+": "+v.Exp.Content)
			} else {
				parts = append(parts, "["+key+"]: "+v.Exp.Content)
			}
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func jsKey(name string) string {
	if isValidIdent(name) {
		return name
	}
	return jsString(name)
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func safeIdent(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func jsString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
