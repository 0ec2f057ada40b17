package vize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize"
	"github.com/vizehq/vize/codegen"
)

func TestCompileTemplateOnly(t *testing.T) {
	src := `<template><div class="greeting">{{ msg }}</div></template>`

	res, err := vize.Compile("Greeting.vize", src, vize.Options{Mode: codegen.ModeModule})
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Code, "_createElementBlock")
	assert.Contains(t, res.Code, "_toDisplayString(_ctx.msg)")
	assert.NotEmpty(t, res.ScopeID)
}

func TestCompileScriptSetupInlinesRenderIntoDefaultExport(t *testing.T) {
	src := `<script setup>
const props = defineProps({ title: String })
const emit = defineEmits(['close'])
const count = ref(0)
</script>
<template><div>{{ count }}</div></template>`

	res, err := vize.Compile("Counter.vize", src, vize.Options{Mode: codegen.ModeModule})
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Code, "export default {")
	assert.Contains(t, res.Code, "setup(__props, { expose, emit: __emit })")
	assert.Contains(t, res.Code, "emits: [\"close\"]")
	assert.NotContains(t, res.Code, "defineProps")
	assert.NotContains(t, res.Code, "defineEmits")
}

func TestCompileScopedStyleComposesAndScopesSelectors(t *testing.T) {
	src := `<template><div class="box">hi</div></template>
<style scoped>
.box { color: red; }
</style>`

	res, err := vize.Compile("Box.vize", src, vize.Options{Mode: codegen.ModeModule})
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "[data-v-"+res.ScopeID+"]")
}
