package sfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/sfc"
)

func TestSplitBasicSFC(t *testing.T) {
	a := arena.New(256)
	src := `<template><div>{{ msg }}</div></template>
<script setup>
const msg = ref('hi')
</script>
<style scoped>
.x { color: red; }
</style>`

	d, err := sfc.Split(a, "Hello.vize", src)
	require.NoError(t, err)
	require.NotNil(t, d.TemplateBlock)
	assert.Equal(t, "<div>{{ msg }}</div>", d.TemplateBlock.Content)

	require.NotNil(t, d.ScriptSetupBlock)
	assert.Contains(t, d.ScriptSetupBlock.Content, "ref('hi')")
	assert.Nil(t, d.ScriptBlock)

	require.Len(t, d.StyleBlocks, 1)
	assert.True(t, d.StyleBlocks[0].Scoped())
	assert.True(t, d.HasScoped())
}

func TestSplitDuplicateTemplateErrors(t *testing.T) {
	a := arena.New(64)
	src := `<template><div/></template><template><span/></template>`
	_, err := sfc.Split(a, "Bad.vize", src)
	require.Error(t, err)
	var perr *sfc.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, sfc.ErrDuplicateTemplate, perr.Code)
}

func TestSplitDuplicateScriptSetupErrors(t *testing.T) {
	a := arena.New(64)
	src := `<script setup>const a = 1</script><script setup>const b = 2</script>`
	_, err := sfc.Split(a, "Bad.vize", src)
	require.Error(t, err)
	var perr *sfc.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, sfc.ErrDuplicateSetup, perr.Code)
}

func TestSplitScriptSetupDetectedByEmptyAttr(t *testing.T) {
	a := arena.New(64)
	src := `<script setup lang="ts">const a: number = 1</script>`
	d, err := sfc.Split(a, "Typed.vize", src)
	require.NoError(t, err)
	require.NotNil(t, d.ScriptSetupBlock)
	assert.Equal(t, "ts", d.ScriptSetupBlock.Lang)
}

func TestSplitSelfClosingTemplateIsEmpty(t *testing.T) {
	a := arena.New(64)
	src := `<template/><script>export default {}</script>`
	d, err := sfc.Split(a, "Empty.vize", src)
	require.NoError(t, err)
	require.NotNil(t, d.TemplateBlock)
	assert.Equal(t, "", d.TemplateBlock.Content)
}

func TestSplitNestedTemplateTag(t *testing.T) {
	a := arena.New(128)
	src := `<template><div><template v-if="cond"><span/></template></div></template>`
	d, err := sfc.Split(a, "Nested.vize", src)
	require.NoError(t, err)
	assert.Contains(t, d.TemplateBlock.Content, `<template v-if="cond">`)
}

func TestStyleModuleDefaultsToDollarStyle(t *testing.T) {
	a := arena.New(64)
	src := `<style module>.a{}</style>`
	d, err := sfc.Split(a, "Mod.vize", src)
	require.NoError(t, err)
	name, ok := d.StyleBlocks[0].Module()
	require.True(t, ok)
	assert.Equal(t, "$style", name)
}

func TestSplitCustomBlock(t *testing.T) {
	a := arena.New(64)
	src := `<template><div/></template><docs>## hello</docs>`
	d, err := sfc.Split(a, "Docs.vize", src)
	require.NoError(t, err)
	require.Len(t, d.CustomBlocks, 1)
	assert.Equal(t, "docs", d.CustomBlocks[0].Tag)
	assert.Equal(t, "## hello", d.CustomBlocks[0].Content)
}

func TestSplitUnterminatedBlockIsFatal(t *testing.T) {
	a := arena.New(64)
	src := `<template><div>`
	_, err := sfc.Split(a, "Bad.vize", src)
	require.Error(t, err)
	var perr *sfc.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, sfc.ErrUnexpectedEOF, perr.Code)
}
