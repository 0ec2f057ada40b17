package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/lsp"
)

const counterSrc = `<script setup>
const count = ref(0)
const props = defineProps({ title: String })
</script>
<template>
  <div>{{ count }}</div>
  <p>{{ title }}</p>
  <ul>
    <li v-for="item in count">{{ item }}</li>
  </ul>
</template>
<style scoped>
#oops { color: red; }
</style>`

func TestDocumentStoreOpenComputesDiagnostics(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)
	require.NotNil(t, d)

	diags := d.Diagnostics()
	var sawMissingKey, sawIDSelector bool
	for _, diag := range diags {
		switch diag.Code {
		case "vue/require-v-for-key":
			sawMissingKey = true
		case "vue/css-no-id-selector":
			sawIDSelector = true
		}
	}
	assert.True(t, sawMissingKey, "expected missing :key diagnostic")
	assert.True(t, sawIDSelector, "expected CSS id-selector diagnostic")
}

func TestDocumentHoverResolvesSetupBinding(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)

	offset := lsp.OffsetAt(d.Text, lsp.Position{Line: 5, Character: 10})
	res := d.Hover(offset)
	assert.True(t, res.Found)
}

func TestDocumentCompletionListsBindings(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)

	items := d.Completion(0)
	var names []string
	for _, it := range items {
		names = append(names, it.Label)
	}
	assert.Contains(t, names, "count")
	assert.Contains(t, names, "title")
}

func TestDocumentReferencesFindsAllOccurrences(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)

	offset := lsp.OffsetAt(d.Text, lsp.Position{Line: 5, Character: 10})
	refs := d.References(offset, true)
	assert.GreaterOrEqual(t, len(refs), 2)
}

func TestDocumentPrepareRenameRejectsReservedNames(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", `<template><button @click="$emit('close')">x</button></template>`, 1)

	offset := lsp.OffsetAt(d.Text, lsp.Position{Line: 0, Character: 27})
	_, _, _, ok := d.PrepareRename(offset)
	assert.False(t, ok)
}

func TestDocumentCodeActionsProposesKeyFix(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)

	actions := d.CodeActions(0, len(d.Text))
	var found bool
	for _, a := range actions {
		if a.Title == "Add missing :key" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDocumentSemanticTokensClassifiesPropsAndBindings(t *testing.T) {
	store := lsp.NewDocumentStore()
	d := store.Open("file:///Counter.vize", counterSrc, 1)

	toks := d.SemanticTokens()
	assert.NotEmpty(t, toks)
}
