package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/script"
)

func TestAnalyzeClassifiesRefAndReactiveBindings(t *testing.T) {
	m := croquis.NewModel()
	src := `
import { ref, reactive } from 'vue'
const count = ref(0)
const state = reactive({ a: 1 })
`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.NotNil(t, m.Bindings["count"])
	assert.Equal(t, croquis.SetupRef, m.Bindings["count"].Type)
	assert.True(t, m.IsReactive("count"))

	require.NotNil(t, m.Bindings["state"])
	assert.Equal(t, croquis.SetupReactiveConst, m.Bindings["state"].Type)
	assert.True(t, m.IsReactive("state"))
}

func TestAnalyzeDefineProps(t *testing.T) {
	m := croquis.NewModel()
	src := `
const props = defineProps({ title: { required: true } })
const { title } = defineProps({ title: String })
`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.Len(t, m.Macros.Props, 2)
	assert.Equal(t, "title", m.Macros.Props[0].Name)
	assert.True(t, m.Macros.Props[0].Required)

	require.NotNil(t, m.Bindings["title"])
	assert.Equal(t, croquis.PropsAliased, m.Bindings["title"].Type)
	assert.Equal(t, "title", m.Bindings["title"].AliasOf)
}

func TestAnalyzeDefineEmits(t *testing.T) {
	m := croquis.NewModel()
	src := `const emit = defineEmits(['change', 'close'])`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.Len(t, m.Macros.Emits, 2)
	assert.Equal(t, "change", m.Macros.Emits[0].Name)
	assert.Equal(t, "close", m.Macros.Emits[1].Name)
}

func TestAnalyzeReactiveDestructureIsLoss(t *testing.T) {
	m := croquis.NewModel()
	src := `
import { reactive } from 'vue'
const state = reactive({ a: 1, b: 2 })
const { a, b } = state
`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.Len(t, m.Reactivity.Losses, 1)
	assert.Equal(t, croquis.ReactiveDestructure, m.Reactivity.Losses[0].Kind)
	assert.Equal(t, "state", m.Reactivity.Losses[0].SourceName)
}

func TestAnalyzeRefValueExtractIsLoss(t *testing.T) {
	m := croquis.NewModel()
	src := `
import { ref } from 'vue'
const count = ref(0)
const snapshot = count.value
`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.Len(t, m.Reactivity.Losses, 1)
	assert.Equal(t, croquis.RefValueExtract, m.Reactivity.Losses[0].Kind)
	assert.Equal(t, "count", m.Reactivity.Losses[0].SourceName)
}

func TestAnalyzeSetupContextViolationOutsideSetup(t *testing.T) {
	m := croquis.NewModel()
	src := `onMounted(() => { console.log('hi') })`
	require.NoError(t, script.Analyze(m, src, "js", false))

	require.Len(t, m.Violations, 1)
	assert.Equal(t, "onMounted", m.Violations[0].Callee)
}

func TestAnalyzeNoViolationInsideSetup(t *testing.T) {
	m := croquis.NewModel()
	src := `onMounted(() => {})`
	require.NoError(t, script.Analyze(m, src, "js", true))
	assert.Empty(t, m.Violations)
}

func TestAnalyzeInvalidExportInSetup(t *testing.T) {
	m := croquis.NewModel()
	src := `export const leaked = 1`
	require.NoError(t, script.Analyze(m, src, "js", true))

	require.Len(t, m.InvalidExports, 1)
	assert.Equal(t, "leaked", m.InvalidExports[0].Name)
	assert.Equal(t, croquis.ExportValue, m.InvalidExports[0].Kind)
}
