package croquis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizehq/vize/croquis"
)

func TestNewModelSeedsGlobalScopeChain(t *testing.T) {
	m := croquis.NewModel()
	require.Len(t, m.Scopes, 3)
	assert.Equal(t, croquis.JsGlobalScope, m.Scope(0).Kind)
	assert.Equal(t, croquis.VueGlobalScope, m.Scope(1).Kind)
	assert.Equal(t, croquis.ModuleScope, m.Scope(2).Kind)
	assert.Equal(t, croquis.ScopeID(2), m.ModuleScopeID())
	assert.Equal(t, croquis.NoScope, m.Scope(0).ParentID)
}

func TestLookupWalksScopeChainInnermostFirst(t *testing.T) {
	m := croquis.NewModel()
	m.Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupRef}

	forScope := m.PushScope(croquis.VForScope, m.ModuleScopeID())
	m.Scope(forScope).Bindings["msg"] = &croquis.Binding{Name: "msg", Type: croquis.SetupConst}

	scope, binding := m.Lookup(forScope, "msg")
	require.NotNil(t, binding)
	assert.Equal(t, forScope, scope.ID)
	assert.Equal(t, croquis.SetupConst, binding.Type)
}

func TestLookupFallsBackToTopLevelBindings(t *testing.T) {
	m := croquis.NewModel()
	m.Bindings["count"] = &croquis.Binding{Name: "count", Type: croquis.SetupRef}

	scope, binding := m.Lookup(m.ModuleScopeID(), "count")
	require.NotNil(t, binding)
	assert.Equal(t, m.ModuleScopeID(), scope.ID)
}

func TestLookupMissReturnsNil(t *testing.T) {
	m := croquis.NewModel()
	scope, binding := m.Lookup(m.ModuleScopeID(), "nope")
	assert.Nil(t, scope)
	assert.Nil(t, binding)
}

func TestIsDefinedAndIsReactive(t *testing.T) {
	m := croquis.NewModel()
	m.Bindings["count"] = &croquis.Binding{Name: "count", Type: croquis.SetupRef}
	m.Reactivity.Sources = append(m.Reactivity.Sources, croquis.ReactivitySource{Name: "count", Kind: croquis.Ref})

	assert.True(t, m.IsDefined(m.ModuleScopeID(), "count"))
	assert.False(t, m.IsDefined(m.ModuleScopeID(), "other"))
	assert.True(t, m.IsReactive("count"))
	assert.True(t, m.NeedsValueAccess("count"))
}
