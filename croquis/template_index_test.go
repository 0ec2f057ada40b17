package croquis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/template"
)

func TestIndexTemplateResolvesScriptBinding(t *testing.T) {
	a := arena.New(64)
	root := template.Parse(a, `<div>{{ msg }}</div>`)

	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	m.IndexTemplate(root.Children)
	require.Len(t, m.TemplateExpressions, 1)
	assert.Equal(t, "msg", m.TemplateExpressions[0].Name)
	assert.False(t, m.TemplateExpressions[0].TemplateLocal)
}

func TestIndexTemplateVForAliasIsLocal(t *testing.T) {
	a := arena.New(128)
	root := template.Parse(a, `<li v-for="item in items">{{ item.name }}</li>`)

	// Simulate a post-transform For node the way transform pass 2 would build it.
	root.Children = []template.Node{
		&template.For{
			Source:     template.NewSimpleExpression("items", false, root.Children[0].Location()),
			ValueAlias: "item",
			Children:   root.Children,
		},
	}

	m := croquis.NewModel()
	m.IndexTemplate(root.Children)

	var sawItem bool
	for _, ref := range m.TemplateExpressions {
		if ref.Name == "item" {
			sawItem = true
			assert.True(t, ref.TemplateLocal)
		}
	}
	assert.True(t, sawItem)
}

func TestIndexTemplateTracksVIfGuard(t *testing.T) {
	a := arena.New(64)
	root := &template.Root{
		Children: []template.Node{
			&template.If{
				Branches: []*template.IfBranch{
					{
						Condition: template.NewSimpleExpression("show", false, sfc.SourceLocation{}),
						Children: []template.Node{
							&template.Interpolation{Expression: template.NewSimpleExpression("label", false, sfc.SourceLocation{})},
						},
					},
				},
			},
		},
	}
	_ = a

	m := croquis.NewModel()
	m.IndexTemplate(root.Children)
	require.Len(t, m.TemplateExpressions, 2)
	var labelRef *croquis.TemplateExprRef
	for i := range m.TemplateExpressions {
		if m.TemplateExpressions[i].Name == "label" {
			labelRef = &m.TemplateExpressions[i]
		}
	}
	require.NotNil(t, labelRef)
	assert.Equal(t, "show", labelRef.VIfGuard)
}
