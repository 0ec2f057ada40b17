// Package template implements the SFC template parser (spec.md 4.C): an
// arena-backed tagged-union AST plus the directive-shorthand grammar.
// Following spec.md §9's rearchitecture notes, node variants are closed
// Go types (Element, Text, Interpolation, Comment, If, For, Hoisted)
// rather than a class hierarchy, and a Node never holds a parent pointer —
// traversals thread a `path` stack instead (see Walk in visit.go).
package template

import "github.com/vizehq/vize/sfc"

// Node is implemented by every template AST node variant. Visitors type-switch
// on the concrete type rather than dispatching through virtual methods,
// matching the teacher's direct-switch style in eval_core.go.
type Node interface {
	Location() sfc.SourceLocation
	isNode()
}

// TagKind classifies an Element's tag.
type TagKind int

const (
	HTMLElement TagKind = iota
	Component
	TemplateTag
	Slot
)

// Element is a tagged or self-closing template element.
type Element struct {
	Tag           string
	TagKind       TagKind
	Props         []PropNode
	Children      []Node
	IsSelfClosing bool
	Loc           sfc.SourceLocation

	// Populated by transform (spec.md 4.F.5): index into the owning root's
	// Hoists for a fully- or props-only-hoisted element.
	HoistedPropsIndex int
	HasHoistedProps   bool

	// Populated by transform (spec.md 4.F.6).
	PatchFlag    int
	DynamicProps []string
}

func (*Element) isNode()                          {}
func (e *Element) Location() sfc.SourceLocation    { return e.Loc }

// Text is a literal text run.
type Text struct {
	Content string
	Loc     sfc.SourceLocation
}

func (*Text) isNode()                       {}
func (t *Text) Location() sfc.SourceLocation { return t.Loc }

// Interpolation is a `{{ expr }}` mustache. Its expression is always
// non-static after parse (spec.md §3 invariant).
type Interpolation struct {
	Expression *Expression
	Loc        sfc.SourceLocation
}

func (*Interpolation) isNode()                       {}
func (i *Interpolation) Location() sfc.SourceLocation { return i.Loc }

// Comment is an HTML comment. The parser always keeps comments; there is
// no option to strip them.
type Comment struct {
	Content string
	Loc     sfc.SourceLocation
}

func (*Comment) isNode()                       {}
func (c *Comment) Location() sfc.SourceLocation { return c.Loc }

// IfBranch is one branch (`v-if`/`v-else-if`/`v-else`) of an If node.
type IfBranch struct {
	Condition    *Expression // nil for a plain v-else
	Children     []Node
	UserKey      *Expression
	IsTemplateIf bool
	Loc          sfc.SourceLocation
}

// If is the coalesced result of a v-if/v-else-if/v-else chain
// (spec.md 4.F pass 1).
type If struct {
	Branches []*IfBranch
	Loc      sfc.SourceLocation
}

func (*If) isNode()                       {}
func (i *If) Location() sfc.SourceLocation { return i.Loc }

// For is the result of rewriting a v-for element (spec.md 4.F pass 2).
type For struct {
	Source     *Expression
	ValueAlias string
	KeyAlias   string
	IndexAlias string
	Children   []Node // exactly one: the original element
	Loc        sfc.SourceLocation
}

func (*For) isNode()                       {}
func (f *For) Location() sfc.SourceLocation { return f.Loc }

// Hoisted is a post-transform placeholder for a node moved to
// Root.Hoists[Index] (spec.md 4.F pass 5).
type Hoisted struct {
	Index int
	Loc   sfc.SourceLocation
}

func (*Hoisted) isNode()                       {}
func (h *Hoisted) Location() sfc.SourceLocation { return h.Loc }

// Root wraps the top-level children of a parsed/transformed template,
// plus the hoist table populated by the static-hoisting pass.
type Root struct {
	Children []Node
	Hoists   []Node
	Errors   []*ParseError
}
