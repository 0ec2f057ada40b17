package lint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/cmd/vize/commands/lint"
)

const withKeyBug = `
<template>
<ul><li v-for="item in items">{{ item }}</li></ul>
</template>
`

func TestRun_WrongNumberOfArguments(t *testing.T) {
	err := lint.Run([]string{})
	require.Error(t, err)
	require.Equal(t, "lint: requires at least 1 file argument", err.Error())
}

func TestRun_ReportsMissingKeyDiagnostic(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "List.vize")
	require.NoError(t, os.WriteFile(src, []byte(withKeyBug), 0o644))

	err := lint.Run([]string{src})
	require.Error(t, err)
}

func TestRun_ConfigDisablesRule(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "List.vize")
	require.NoError(t, os.WriteFile(src, []byte(withKeyBug), 0o644))

	cfg := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("disabled:\n  - vue/require-v-for-key\n"), 0o644))

	err := lint.Run([]string{"-config", cfg, src})
	require.NoError(t, err)
}

func TestUsage(t *testing.T) {
	usage := lint.Usage()
	require.NotEmpty(t, usage)
	require.Contains(t, usage, "vize lint")
}
