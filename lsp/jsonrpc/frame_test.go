package jsonrpc_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/lsp/jsonrpc"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := jsonrpc.NewWriter(&buf)
	require.NoError(t, w.Write(&jsonrpc.Message{
		ID:     json.RawMessage(`1`),
		Method: "initialize",
		Params: json.RawMessage(`{"processId":null}`),
	}))

	r := jsonrpc.NewReader(&buf)
	msg, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "2.0", msg.JSONRPC)
	assert.Equal(t, "initialize", msg.Method)
	assert.Equal(t, json.RawMessage(`1`), msg.ID)
}

func TestReadMissingContentLengthErrors(t *testing.T) {
	r := jsonrpc.NewReader(bytes.NewBufferString("\r\n{}"))
	_, err := r.Read()
	assert.Error(t, err)
}

func TestReadTwoMessagesInSequence(t *testing.T) {
	var buf bytes.Buffer
	w := jsonrpc.NewWriter(&buf)
	require.NoError(t, w.Write(&jsonrpc.Message{Method: "a"}))
	require.NoError(t, w.Write(&jsonrpc.Message{Method: "b"}))

	r := jsonrpc.NewReader(&buf)
	first, err := r.Read()
	require.NoError(t, err)
	second, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "a", first.Method)
	assert.Equal(t, "b", second.Method)
}
