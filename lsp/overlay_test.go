package lsp

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestOverlayFSOpen_UpperOverrides(t *testing.T) {
	upper := fstest.MapFS{
		"Counter.vize": {Data: []byte("upper content")},
	}
	lower := fstest.MapFS{
		"Counter.vize": {Data: []byte("lower content")},
	}

	o := newOverlayFS(upper, lower)
	f, err := o.Open("Counter.vize")
	assert.NoError(t, err)
	defer f.Close()

	data := make([]byte, 13)
	n, err := f.Read(data)
	assert.NoError(t, err)
	assert.Equal(t, "upper content", string(data[:n]))
}

func TestOverlayFSOpen_LowerFallback(t *testing.T) {
	upper := fstest.MapFS{}
	lower := fstest.MapFS{
		"Counter.vize": {Data: []byte("lower content")},
	}

	o := newOverlayFS(upper, lower)
	f, err := o.Open("Counter.vize")
	assert.NoError(t, err)
	defer f.Close()
}

func TestOverlayFSOpen_NotFound(t *testing.T) {
	o := newOverlayFS(fstest.MapFS{}, os.DirFS("none"))
	_, err := o.Open("Missing.vize")
	assert.Error(t, err)
}

func TestOverlayFSReadDir_Merged(t *testing.T) {
	upper := fstest.MapFS{
		"A.vize": {Data: []byte("a")},
		"B.vize": {Data: []byte("upper-b")},
	}
	lower := fstest.MapFS{
		"B.vize": {Data: []byte("lower-b")},
		"C.vize": {Data: []byte("c")},
	}

	o := newOverlayFS(upper, lower)
	entries, err := o.ReadDir(".")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOverlayFSGlob_Sorted(t *testing.T) {
	upper := fstest.MapFS{
		"Z.vize": {Data: []byte("z")},
		"A.vize": {Data: []byte("a")},
	}
	o := newOverlayFS(upper, fstest.MapFS{})
	matches, err := o.Glob("*.vize")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.IsIncreasing(t, matches)
}
