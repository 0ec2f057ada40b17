package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunPrefixesSetupRefAsUnrefInline(t *testing.T) {
	root := parse(t, `<div>{{ count }}</div>`)
	m := croquis.NewModel()
	m.Bindings["count"] = &croquis.Binding{Name: "count", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{NonInline: false})
	el := res.Root.Children[0].(*template.Element)
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "_unref(count)", interp.Expression.Content)
}

func TestRunPrefixesSetupRefAsSetupAccessNonInline(t *testing.T) {
	root := parse(t, `<div>{{ count }}</div>`)
	m := croquis.NewModel()
	m.Bindings["count"] = &croquis.Binding{Name: "count", Type: croquis.SetupRef}

	res := transform.Run(root, m, transform.Options{NonInline: true})
	el := res.Root.Children[0].(*template.Element)
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "$setup.count", interp.Expression.Content)
}

func TestRunPrefixesUnknownIdentifierAsCtx(t *testing.T) {
	root := parse(t, `<div>{{ mystery }}</div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "_ctx.mystery", interp.Expression.Content)
}

func TestRunLeavesVForAliasUnprefixed(t *testing.T) {
	root := parse(t, `<li v-for="item in items">{{ item }}</li>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	forNode := res.Root.Children[0].(*template.For)
	el := forNode.Children[0].(*template.Element)
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "item", interp.Expression.Content)
	assert.Equal(t, "_ctx.items", forNode.Source.Content)
}

func TestRunPrefixesPropsBinding(t *testing.T) {
	root := parse(t, `<div>{{ title }}</div>`)
	m := croquis.NewModel()
	m.Bindings["title"] = &croquis.Binding{Name: "title", Type: croquis.Props}

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	interp := el.Children[0].(*template.Interpolation)
	assert.Equal(t, "__props.title", interp.Expression.Content)
}
