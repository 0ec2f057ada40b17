package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/cmd/vize/commands/lsp"
)

func TestUsage(t *testing.T) {
	usage := lsp.Usage()
	require.NotEmpty(t, usage)
	require.Contains(t, usage, "vize lsp")
}

func TestRun_RejectsUnknownFlag(t *testing.T) {
	err := lsp.Run([]string{"-bogus-flag"})
	require.Error(t, err)
}
