package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/template"
)

func TestParseElementWithInterpolation(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div>{{ msg }}</div>`)
	require.Len(t, root.Children, 1)

	el, ok := root.Children[0].(*template.Element)
	require.True(t, ok)
	assert.Equal(t, "div", el.Tag)
	require.Len(t, el.Children, 1)

	interp, ok := el.Children[0].(*template.Interpolation)
	require.True(t, ok)
	assert.Equal(t, "msg", interp.Expression.Content)
}

func TestParseBindShorthand(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div :id="foo"></div>`)
	el := root.Children[0].(*template.Element)
	require.Len(t, el.Props, 1)

	dir, ok := el.Props[0].(*template.Directive)
	require.True(t, ok)
	assert.Equal(t, "bind", dir.Name)
	require.NotNil(t, dir.Arg)
	assert.Equal(t, "id", dir.Arg.Content)
	assert.True(t, dir.Arg.IsStatic)
	assert.Equal(t, "foo", dir.Exp.Content)
}

func TestParseOnShorthandWithModifiers(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<button @click.stop.prevent="submit"></button>`)
	el := root.Children[0].(*template.Element)
	dir := el.Props[0].(*template.Directive)
	assert.Equal(t, "on", dir.Name)
	assert.Equal(t, "click", dir.Arg.Content)
	assert.Equal(t, []string{"stop", "prevent"}, dir.Modifiers)
}

func TestParseSlotShorthand(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<template #header="{ title }"></template>`)
	el := root.Children[0].(*template.Element)
	assert.Equal(t, template.TemplateTag, el.TagKind)
	dir := el.Props[0].(*template.Directive)
	assert.Equal(t, "slot", dir.Name)
	assert.Equal(t, "header", dir.Arg.Content)
}

func TestParseDynamicArg(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div :[key]="val"></div>`)
	el := root.Children[0].(*template.Element)
	dir := el.Props[0].(*template.Directive)
	assert.False(t, dir.Arg.IsStatic)
	assert.Equal(t, "key", dir.Arg.Content)
}

func TestParseVForDirectiveNoArg(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<li v-for="item in items"></li>`)
	el := root.Children[0].(*template.Element)
	dir := el.Props[0].(*template.Directive)
	assert.Equal(t, "for", dir.Name)
	assert.Equal(t, "item in items", dir.Exp.Content)
}

func TestParseComponentTagKind(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<MyComponent/>`)
	el := root.Children[0].(*template.Element)
	assert.Equal(t, template.Component, el.TagKind)
	assert.True(t, el.IsSelfClosing)
}

func TestParseVoidElement(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div><input type="text"></div>`)
	el := root.Children[0].(*template.Element)
	input := el.Children[0].(*template.Element)
	assert.True(t, input.IsSelfClosing)
}

func TestParseCommentPreserved(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<!-- hello --><div/>`)
	_, ok := root.Children[0].(*template.Comment)
	require.True(t, ok)
}

func TestParsePlainAttribute(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div class="box"></div>`)
	el := root.Children[0].(*template.Element)
	attr := el.Props[0].(*template.Attribute)
	assert.Equal(t, "class", attr.Name)
	require.NotNil(t, attr.Value)
	assert.Equal(t, "box", *attr.Value)
}

func TestWalkVisitsNestedChildren(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div><span>{{ x }}</span></div>`)

	var tags []string
	template.Walk(root.Children, func(n template.Node, path []template.PathEntry) {
		if el, ok := n.(*template.Element); ok {
			tags = append(tags, el.Tag)
		}
	})
	assert.Equal(t, []string{"div", "span"}, tags)
}
