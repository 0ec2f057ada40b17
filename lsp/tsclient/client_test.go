package tsclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vizehq/vize/lsp/tsclient"
)

func TestResolveExecutablePrefersExplicitPath(t *testing.T) {
	assert.Equal(t, "/custom/tsgo", tsclient.ResolveExecutable("/custom/tsgo"))
}

func TestResolveExecutableFallsBackToEnv(t *testing.T) {
	t.Setenv("TSGO_PATH", "/env/tsgo")
	assert.Equal(t, "/env/tsgo", tsclient.ResolveExecutable(""))
}

func TestStartWithEmptyPathReturnsNilClient(t *testing.T) {
	c := tsclient.Start("", 0)
	assert.Nil(t, c)
}

func TestNilClientDegradesGracefully(t *testing.T) {
	var c *tsclient.Client
	assert.Nil(t, c.Diagnostics("file:///a.vize"))
	assert.NotPanics(t, func() { c.Shutdown() })
	_, err := c.Hover("file:///a.vize", 0, 0)
	assert.Error(t, err)
}
