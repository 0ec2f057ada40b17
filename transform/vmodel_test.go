package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func findDir(t *testing.T, el *template.Element, name string) *template.Directive {
	t.Helper()
	for _, p := range el.Props {
		if d, ok := p.(*template.Directive); ok && d.Name == name {
			return d
		}
	}
	return nil
}

func TestRunExpandsVModelOnComponent(t *testing.T) {
	root := parse(t, `<MyInput v-model="name"></MyInput>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)
	require.Nil(t, findDir(t, el, "model"))

	bind := findDir(t, el, "bind")
	require.NotNil(t, bind)
	assert.Equal(t, "modelValue", bind.Arg.Content)

	on := findDir(t, el, "on")
	require.NotNil(t, on)
	assert.Equal(t, "update:modelValue", on.Arg.Content)
}

func TestRunExpandsVModelOnNativeInputWithModifiers(t *testing.T) {
	root := parse(t, `<input v-model.number.trim="age">`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)

	model := findDir(t, el, "model")
	require.NotNil(t, model, "native element keeps its v-model directive for withDirectives")

	on := findDir(t, el, "on")
	require.NotNil(t, on)
	assert.Equal(t, "update:modelValue", on.Arg.Content)
	assert.Contains(t, on.Exp.Content, "_toNumber(")
	assert.Contains(t, on.Exp.Content, ".trim()")
}

func TestRunExpandsVModelLazyRenamesEvent(t *testing.T) {
	root := parse(t, `<input v-model.lazy="name">`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	el := res.Root.Children[0].(*template.Element)

	on := findDir(t, el, "on")
	require.NotNil(t, on)
	assert.Equal(t, "change", on.Arg.Content)
}
