package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/server"
)

const counterSFC = `
<script setup>
const count = ref(0)
</script>
<template><div>{{ count }}</div></template>
`

func TestCompile(t *testing.T) {
	res, err := server.Compile(server.CompileRequest{
		Filename: "Counter.vize",
		Source:   counterSFC,
	})
	require.NoError(t, err)
	require.Empty(t, res.Error)
	require.NotEmpty(t, res.Code)
}

func TestCompile_InvalidSource(t *testing.T) {
	_, err := server.Compile(server.CompileRequest{
		Filename: "Broken.vize",
		Source:   "<template><div>{{ unterminated",
	})
	require.Error(t, err)
}

func TestLint_ReportsMissingKey(t *testing.T) {
	res, err := server.Lint(server.LintRequest{
		Filename: "List.vize",
		Source:   `<template><ul><li v-for="item in items">{{ item }}</li></ul></template>`,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Diagnostics)

	var found bool
	for _, d := range res.Diagnostics {
		if d.Rule == "vue/require-v-for-key" {
			found = true
		}
	}
	require.True(t, found)
}

func TestHover_ResolvesBinding(t *testing.T) {
	offset := strings.Index(counterSFC, "count }}")
	require.Greater(t, offset, 0)

	res := server.Hover(server.HoverRequest{
		Filename: "Counter.vize",
		Source:   counterSFC,
		Offset:   offset,
	})
	require.True(t, res.Found)
}

func TestModule_Name(t *testing.T) {
	m := server.NewModule()
	require.Equal(t, "vize-console", m.Name())
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	require.NoError(t, server.NewModule().Mount(context.Background(), router))
	return router
}

func TestHandleRule_KnownRule(t *testing.T) {
	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/rule/vue/require-v-for-key", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var res server.RuleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Equal(t, "vue/require-v-for-key", res.Name)
	require.Equal(t, "error", res.DefaultSeverity)
}

func TestHandleRule_UnknownRule(t *testing.T) {
	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/rule/vue/does-not-exist", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var res server.RuleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.NotEmpty(t, res.Error)
}
