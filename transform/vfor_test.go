package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

func TestRunRewritesSimpleVFor(t *testing.T) {
	root := parse(t, `<li v-for="item in items">{{ item.name }}</li>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	require.Len(t, res.Root.Children, 1)
	forNode, ok := res.Root.Children[0].(*template.For)
	require.True(t, ok)
	assert.Equal(t, "item", forNode.ValueAlias)
	assert.Equal(t, "_ctx.items", forNode.Source.Content)
}

func TestRunRewritesVForWithKeyIndexTuple(t *testing.T) {
	root := parse(t, `<li v-for="(item, key, idx) of items">{{ item }}</li>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	forNode := res.Root.Children[0].(*template.For)
	assert.Equal(t, "item", forNode.ValueAlias)
	assert.Equal(t, "key", forNode.KeyAlias)
	assert.Equal(t, "idx", forNode.IndexAlias)
}

func TestRunFlagsVForWithoutExpression(t *testing.T) {
	root := parse(t, `<li v-for="">x</li>`)
	m := croquis.NewModel()

	res := transform.Run(root, m, transform.Options{})
	require.Len(t, res.Diags, 1)
	assert.Equal(t, transform.ErrForNoExpression, res.Diags[0].Code)
	assert.Empty(t, res.Root.Children)
}
