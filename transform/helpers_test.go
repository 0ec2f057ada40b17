package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/transform"
)

func TestHelperSetAddIsOrderedAndDeduped(t *testing.T) {
	h := transform.NewHelperSet()
	h.Add("createVNode")
	h.Add("toDisplayString")
	h.Add("createVNode")
	assert.Equal(t, []string{"createVNode", "toDisplayString"}, h.List())
}

func TestNeedsComponentResolutionForUnboundCapitalizedName(t *testing.T) {
	m := croquis.NewModel()
	assert.True(t, transform.NeedsComponentResolution(m, "MyWidget"))
}

func TestNeedsComponentResolutionFalseForBoundImport(t *testing.T) {
	m := croquis.NewModel()
	m.Bindings["MyWidget"] = &croquis.Binding{Name: "MyWidget", Type: croquis.ExternalModule}
	assert.False(t, transform.NeedsComponentResolution(m, "MyWidget"))
}

func TestRunRegistersCreateVNodeHelperForComponent(t *testing.T) {
	root := parse(t, `<MyWidget />`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	assert.Contains(t, res.Helpers.List(), "createVNode")
	assert.Contains(t, res.Helpers.List(), "resolveComponent")
}
