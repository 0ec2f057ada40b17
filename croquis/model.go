// Package croquis implements the semantic model spec.md calls "Croquis":
// scope chain, binding tables, reactivity tracking, provide/inject, a
// template-expression index, and a cross-file registry. The flat
// scope-vector-by-id design is lifted from viant-linager's
// analyzer/linage.Scope{ID, Kind, ParentID, Start, End} and Identity{Ref,
// Name, Kind, Scope, ParentScope} (same file's doc-comment diagram),
// generalized from Go source analysis to Vue SFC script/template
// analysis.
package croquis

import "github.com/vizehq/vize/sfc"

// BindingType classifies how an identifier declared in script-setup (or a
// plain script) should be accessed from template expressions (spec.md §3).
type BindingType int

const (
	LiteralConst BindingType = iota
	SetupConst
	SetupLet
	SetupRef
	SetupMaybeRef
	SetupReactiveConst
	Props
	PropsAliased
	Options
	Data
	JsGlobalUniversal
	JsGlobalBrowser
	JsGlobalNode
	VueGlobal
	ExternalModule
)

func (b BindingType) String() string {
	switch b {
	case LiteralConst:
		return "LiteralConst"
	case SetupConst:
		return "SetupConst"
	case SetupLet:
		return "SetupLet"
	case SetupRef:
		return "SetupRef"
	case SetupMaybeRef:
		return "SetupMaybeRef"
	case SetupReactiveConst:
		return "SetupReactiveConst"
	case Props:
		return "Props"
	case PropsAliased:
		return "PropsAliased"
	case Options:
		return "Options"
	case Data:
		return "Data"
	case JsGlobalUniversal:
		return "JsGlobalUniversal"
	case JsGlobalBrowser:
		return "JsGlobalBrowser"
	case JsGlobalNode:
		return "JsGlobalNode"
	case VueGlobal:
		return "VueGlobal"
	case ExternalModule:
		return "ExternalModule"
	default:
		return "Unknown"
	}
}

// Binding is one entry of the script-level binding table.
type Binding struct {
	Name    string
	Type    BindingType
	AliasOf string // set for PropsAliased: the original defineProps key
	Span    sfc.Span
}

// ScopeKind enumerates the scope tree node kinds (spec.md §3).
type ScopeKind int

const (
	ModuleScope ScopeKind = iota
	ScriptSetupScope
	NonScriptSetupScope
	FunctionScope
	ClosureScope
	BlockScope
	VForScope
	VSlotScope
	EventHandlerScope
	CallbackScope
	ClientOnlyScope
	UniversalScope
	ExternalModuleScope
	VueGlobalScope
	JsGlobalScope
)

// ScopeID indexes Model.Scopes. Scopes never hold owning pointers to their
// parent or children — only ids — per spec.md §9's flat-vector
// rearchitecture note.
type ScopeID int

// NoScope (-1) is the sentinel ParentID for "no parent" (the outermost
// JsGlobal scope).
const NoScope ScopeID = -1

// Scope is one node of the scope tree, grounded on linage.Scope's
// {ID, Kind, ParentID, Start, End} shape.
type Scope struct {
	ID       ScopeID
	Kind     ScopeKind
	ParentID ScopeID
	Span     sfc.Span
	Bindings map[string]*Binding

	// VFor-specific data: the element/value/key/index aliases bound by
	// this scope (spec.md §3's "scope-specific data" note).
	VForAliases []string
	// VSlot-specific: destructured slot prop names.
	VSlotProps []string
	// EventHandler-specific: whether `$event` is visible in this scope.
	EventVisible bool
}

// ReactivitySourceKind enumerates reactivity API call shapes.
type ReactivitySourceKind int

const (
	Ref ReactivitySourceKind = iota
	ShallowRef
	Reactive
	Computed
	Readonly
	ToRef
	ToRefs
)

// ReactivitySource records one `ref(...)`/`reactive(...)`/etc. declaration.
type ReactivitySource struct {
	Name string
	Kind ReactivitySourceKind
}

// LossKind enumerates the ways reactivity can be silently lost.
type LossKind int

const (
	ReactiveDestructure LossKind = iota
	RefValueDestructure
	RefValueExtract
	ReactiveSpread
	ReactiveReassign
)

func (k LossKind) String() string {
	switch k {
	case ReactiveDestructure:
		return "ReactiveDestructure"
	case RefValueDestructure:
		return "RefValueDestructure"
	case RefValueExtract:
		return "RefValueExtract"
	case ReactiveSpread:
		return "ReactiveSpread"
	case ReactiveReassign:
		return "ReactiveReassign"
	default:
		return "Unknown"
	}
}

// Loss is a detected reactivity-loss occurrence.
type Loss struct {
	Kind             LossKind
	Span             sfc.Span
	SourceName       string
	DestructuredKeys []string
}

// Reactivity aggregates the reactive sources declared and the losses
// detected across a script-setup block.
type Reactivity struct {
	Sources []ReactivitySource
	Losses  []Loss
}

// InjectPattern enumerates how an `inject(...)` call's result is bound.
type InjectPattern int

const (
	SimplePattern InjectPattern = iota
	ObjectDestructure
	ArrayDestructure
	IndirectDestructure
)

// Provide is a `provide(key, value)` call site.
type Provide struct {
	Key  string
	Span sfc.Span
}

// Inject is an `inject(key[, default])` call site.
type Inject struct {
	Key       string
	LocalName string
	HasDefault bool
	Pattern   InjectPattern
	Span      sfc.Span
}

// ProvideInject aggregates provide/inject call sites.
type ProvideInject struct {
	Provides []Provide
	Injects  []Inject
}

// PropDefinition is one member of defineProps's resulting prop table.
type PropDefinition struct {
	Name     string
	Required bool
	Default  string // raw source text of the default, if any
}

// EmitDefinition is one member of defineEmits's resulting emit table.
type EmitDefinition struct {
	Name string
}

// ModelDefinition is one defineModel(...) declaration.
type ModelDefinition struct {
	Name string // defaults to "modelValue"
}

// MacroCall records one compiler-macro invocation's span, for diagnostics
// and for the transform pass that strips macro calls from the emitted
// setup body.
type MacroCall struct {
	Macro string
	Span  sfc.Span
}

// Macros aggregates defineProps/defineEmits/defineModel results.
type Macros struct {
	Props      []PropDefinition
	Emits      []EmitDefinition
	Models     []ModelDefinition
	MacroCalls []MacroCall
}

// ExportKind distinguishes the flavors of invalid script-setup export.
type ExportKind int

const (
	ExportValue ExportKind = iota
	ExportFunction
	ExportClass
	ExportDefault
)

// InvalidExport records a value/function/class/default export inside a
// script-setup block (spec.md §4.D — not permitted there).
type InvalidExport struct {
	Name string
	Kind ExportKind
	Span sfc.Span
}

// TypeExport records an `export type`/`export interface` declaration,
// which does not bind a runtime identifier.
type TypeExport struct {
	Name string
	Span sfc.Span
}

// SetupContextViolation records a lifecycle-hook or reactive-API call at
// the top level of a non-setup script (spec.md §4.D).
type SetupContextViolation struct {
	Callee string
	Span   sfc.Span
}

// TemplateExprRef records one identifier reference found while the
// template AST is traversed (spec.md §4.E point 2).
type TemplateExprRef struct {
	Name           string
	Span           sfc.Span
	ResolvedScope  ScopeID // NoScope if unresolved
	TemplateLocal  bool
	VIfGuard       string // "" if not inside any v-if branch
}

// Model is the full Croquis semantic model for one SFC.
type Model struct {
	Bindings       map[string]*Binding
	Macros         Macros
	Reactivity     Reactivity
	ProvideInject  ProvideInject
	TypeExports    []TypeExport
	InvalidExports []InvalidExport
	Violations     []SetupContextViolation

	Scopes []*Scope // index i has ScopeID(i); Scopes[0] is always the Module scope.

	TemplateExpressions []TemplateExprRef

	Exprs *ExprCache
}

// NewModel returns an empty Model seeded with the canonical Module scope
// and its JS/Vue-global ancestor scopes (spec.md §3 invariant: "Exactly
// one root Module scope per SFC... JS/Vue global scopes are pre-populated
// as ancestors").
func NewModel() *Model {
	m := &Model{Bindings: make(map[string]*Binding), Exprs: NewExprCache()}
	jsGlobal := m.pushScope(JsGlobalScope, NoScope)
	vueGlobal := m.pushScope(VueGlobalScope, jsGlobal)
	m.pushScope(ModuleScope, vueGlobal)
	return m
}

func (m *Model) pushScope(kind ScopeKind, parent ScopeID) ScopeID {
	id := ScopeID(len(m.Scopes))
	m.Scopes = append(m.Scopes, &Scope{ID: id, Kind: kind, ParentID: parent, Bindings: make(map[string]*Binding)})
	return id
}

// PushScope appends a new child scope of parent and returns its id.
func (m *Model) PushScope(kind ScopeKind, parent ScopeID) ScopeID {
	return m.pushScope(kind, parent)
}

// ModuleScopeID returns the id of the root Module scope (always the third
// scope pushed by NewModel: JsGlobal, VueGlobal, Module).
func (m *Model) ModuleScopeID() ScopeID { return 2 }

// Scope returns the scope for id.
func (m *Model) Scope(id ScopeID) *Scope {
	if id < 0 || int(id) >= len(m.Scopes) {
		return nil
	}
	return m.Scopes[id]
}

// Lookup walks the scope chain from start outward (innermost-first),
// returning the first matching (Scope, Binding) pair. This is the
// canonical precedence rule referenced by SPEC_FULL's Open Question 4:
// a v-for alias always wins over an outer defineProps destructure key.
func (m *Model) Lookup(start ScopeID, name string) (*Scope, *Binding) {
	for id := start; id != NoScope; {
		scope := m.Scope(id)
		if scope == nil {
			return nil, nil
		}
		if b, ok := scope.Bindings[name]; ok {
			return scope, b
		}
		id = scope.ParentID
	}
	if b, ok := m.Bindings[name]; ok {
		return m.Scope(m.ModuleScopeID()), b
	}
	return nil, nil
}

// IsDefined reports whether name resolves anywhere in the scope chain
// starting at start, or in the top-level script Bindings.
func (m *Model) IsDefined(start ScopeID, name string) bool {
	_, b := m.Lookup(start, name)
	return b != nil
}

// IsReactive reports whether name is a tracked reactivity source.
func (m *Model) IsReactive(name string) bool {
	for _, s := range m.Reactivity.Sources {
		if s.Name == name {
			return true
		}
	}
	return false
}

// NeedsValueAccess reports whether a reference to name (a ref/maybe-ref
// binding) needs `.value`/`_unref` treatment at use sites.
func (m *Model) NeedsValueAccess(name string) bool {
	b, ok := m.Bindings[name]
	if !ok {
		return false
	}
	return b.Type == SetupRef || b.Type == SetupMaybeRef
}

// Props returns the defineProps-derived prop table.
func (m *Model) Props() []PropDefinition { return m.Macros.Props }

// Emits returns the defineEmits-derived emit table.
func (m *Model) Emits() []EmitDefinition { return m.Macros.Emits }

// BindingsList returns all top-level script bindings.
func (m *Model) BindingsList() map[string]*Binding { return m.Bindings }
