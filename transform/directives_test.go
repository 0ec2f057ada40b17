package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunVPreLeavesInterpolationUnprefixed(t *testing.T) {
	root := parse(t, `<span v-pre>{{ msg }}</span>`)
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	require.Nil(t, findDir(t, el, "pre"))
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "msg", interp.Expression.Content, "v-pre suppresses identifier prefixing")
}

func TestRunVShowContributesNeedPatch(t *testing.T) {
	root := parse(t, `<div v-show="visible"></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	assert.Equal(t, transform.PatchNeedPatch, el.PatchFlag&transform.PatchNeedPatch)
}
