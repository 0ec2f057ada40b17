package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/codegen"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func compile(t *testing.T, src string, m *croquis.Model, opts transform.Options) *transform.Result {
	t.Helper()
	a := arena.New(len(src))
	root := template.Parse(a, src)
	if m == nil {
		m = croquis.NewModel()
	}
	return transform.Run(root, m, opts)
}

func TestGenerateSingleRootElementBlock(t *testing.T) {
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}
	res := compile(t, `<div>{{ msg }}</div>`, m, transform.Options{})

	out := codegen.Generate(res, m, codegen.Options{Mode: codegen.ModeModule})
	assert.Contains(t, out.Code, "_openBlock()")
	assert.Contains(t, out.Code, "_createElementBlock(\"div\"")
	assert.Contains(t, out.Code, "_toDisplayString(_unref(msg))")
	assert.Contains(t, out.Preamble, "import {")
	assert.Contains(t, out.Preamble, "from \"vue\"")
}

func TestGenerateFunctionModePreamble(t *testing.T) {
	res := compile(t, `<div>{{ msg }}</div>`, nil, transform.Options{})
	out := codegen.Generate(res, croquis.NewModel(), codegen.Options{Mode: codegen.ModeFunction, RuntimeGlobal: "Vue"})
	assert.Contains(t, out.Preamble, "const {")
	assert.Contains(t, out.Preamble, "= Vue")
	assert.Contains(t, out.Code, "function render(_ctx, _cache, $props, $setup)")
}

func TestGenerateResolvesComponent(t *testing.T) {
	res := compile(t, `<MyWidget/>`, nil, transform.Options{})
	out := codegen.Generate(res, croquis.NewModel(), codegen.Options{})
	assert.Contains(t, out.Code, "_component_MyWidget = _resolveComponent(\"MyWidget\")")
	assert.Contains(t, out.Code, "_createBlock(_component_MyWidget")
}

func TestGenerateStaticPropsHoist(t *testing.T) {
	res := compile(t, `<p class="title">Hello</p>`, nil, transform.Options{HoistStatic: true})
	require.True(t, res.Root.Children[0].(*template.Element).HasHoistedProps)

	out := codegen.Generate(res, croquis.NewModel(), codegen.Options{})
	assert.Contains(t, out.Code, "const _hoisted_1 = { class: \"title\" }")
	assert.Contains(t, out.Code, "_createElementBlock(\"p\", _hoisted_1")
}

func TestGenerateVForRenderList(t *testing.T) {
	res := compile(t, `<li v-for="item in items">{{ item }}</li>`, nil, transform.Options{})
	out := codegen.Generate(res, croquis.NewModel(), codegen.Options{})
	assert.Contains(t, out.Code, "_renderList(_ctx.items, (item) =>")
}
