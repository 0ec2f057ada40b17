package compile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/cmd/vize/commands/compile"
)

func TestRun_WrongNumberOfArguments(t *testing.T) {
	err := compile.Run([]string{})
	require.Error(t, err)
	require.Equal(t, "compile: requires exactly 1 argument", err.Error())

	err = compile.Run([]string{"a", "b"})
	require.Error(t, err)
	require.Equal(t, "compile: requires exactly 1 argument", err.Error())
}

func TestRun_CompilesToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Counter.vize")
	out := filepath.Join(dir, "Counter.js")

	require.NoError(t, os.WriteFile(src, []byte(`
<script setup>
const count = ref(0)
</script>
<template><div>{{ count }}</div></template>
`), 0o644))

	err := compile.Run([]string{"-out", out, src})
	require.NoError(t, err)

	generated, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotEmpty(t, generated)
}

func TestUsage(t *testing.T) {
	usage := compile.Usage()
	require.NotEmpty(t, usage)
	require.Contains(t, usage, "vize compile")
}
