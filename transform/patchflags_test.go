package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunComputesTextPatchFlag(t *testing.T) {
	root := parse(t, `<div>{{ msg }}</div>`)
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	assert.Equal(t, transform.PatchText, el.PatchFlag)
}

func TestRunComputesFullPropsFlagForDynamicBind(t *testing.T) {
	root := parse(t, `<div v-bind="obj"></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	assert.Equal(t, transform.PatchFullProps, el.PatchFlag&transform.PatchFullProps)
}

func TestRunComputesPropsFlagAndDynamicProps(t *testing.T) {
	root := parse(t, `<div :title="t"></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	require.Equal(t, transform.PatchProps, el.PatchFlag&transform.PatchProps)
	assert.Contains(t, el.DynamicProps, "title")
}

func TestRunComputesClassAndStyleFlags(t *testing.T) {
	root := parse(t, `<div :class="c" :style="s"></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	assert.Equal(t, transform.PatchClass, el.PatchFlag&transform.PatchClass)
	assert.Equal(t, transform.PatchStyle, el.PatchFlag&transform.PatchStyle)
}

func TestRunComputesNeedHydrationForNonTrivialHandler(t *testing.T) {
	root := parse(t, `<div @mouseover="onHover"></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	assert.Equal(t, transform.PatchNeedHydration, el.PatchFlag&transform.PatchNeedHydration)
}
