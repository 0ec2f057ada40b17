package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunCachesEventHandlerWhenEnabled(t *testing.T) {
	root := parse(t, `<button @click="count++">go</button>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{CacheHandlers: true})
	el := res.Root.Children[0].(*template.Element)
	on := findDir(t, el, "on")
	require.NotNil(t, on)
	assert.True(t, on.Cached)
	assert.Equal(t, 0, on.CacheIndex)
}

func TestRunDoesNotCacheWhenDisabled(t *testing.T) {
	root := parse(t, `<button @click="count++">go</button>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{CacheHandlers: false})
	el := res.Root.Children[0].(*template.Element)
	on := findDir(t, el, "on")
	require.NotNil(t, on)
	assert.False(t, on.Cached)
}

func TestRunAssignsDistinctCacheIndicesAcrossHandlers(t *testing.T) {
	root := parse(t, `<div><button @click="a">x</button><button @click="b">y</button></div>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{CacheHandlers: true})
	outer := res.Root.Children[0].(*template.Element)
	first := findDir(t, outer.Children[0].(*template.Element), "on")
	second := findDir(t, outer.Children[1].(*template.Element), "on")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.CacheIndex, second.CacheIndex)
}
