package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunHoistsFullyStaticNestedElement(t *testing.T) {
	root := parse(t, `<div><p class="title">Hello</p>{{ msg }}</div>`)
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{HoistStatic: true})
	require.Len(t, res.Root.Hoists, 1)
	outer := res.Root.Children[0].(*template.Element)
	hoisted, ok := outer.Children[0].(*template.Hoisted)
	require.True(t, ok, "nested fully-static <p> should become a Hoisted placeholder")
	assert.Equal(t, 0, hoisted.Index)
}

func TestRunDoesNotFullyHoistRootLevelStaticElement(t *testing.T) {
	root := parse(t, `<p class="title">Hello</p>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{HoistStatic: true})
	el, ok := res.Root.Children[0].(*template.Element)
	require.True(t, ok, "root-level static element keeps block tracking, only gets props-hoisted")
	assert.True(t, el.HasHoistedProps)
}

func TestRunHoistsVOnceSubtreeUnconditionally(t *testing.T) {
	root := parse(t, `<div><p v-once>{{ msg }}</p></div>`)
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{HoistStatic: true})
	require.Len(t, res.Root.Hoists, 1)
	outer := res.Root.Children[0].(*template.Element)
	_, ok := outer.Children[0].(*template.Hoisted)
	assert.True(t, ok, "v-once subtree hoists even though its interpolation is dynamic")
}

func TestRunDoesNotHoistElementWithDirective(t *testing.T) {
	root := parse(t, `<div><p v-if="show">Hello</p></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{HoistStatic: true})
	assert.Empty(t, res.Root.Hoists)
}
