package template

import "github.com/vizehq/vize/sfc"

// PropNode is either a plain Attribute or a Directive, per spec.md §3.
type PropNode interface {
	isProp()
	Location() sfc.SourceLocation
}

// Attribute is a static (or arbitrary, pre-directive-detection) HTML
// attribute: `name="value"` or a valueless boolean attribute.
type Attribute struct {
	Name  string
	Value *string
	Loc   sfc.SourceLocation
}

func (*Attribute) isProp()                       {}
func (a *Attribute) Location() sfc.SourceLocation { return a.Loc }

// Directive is `v-name[:arg][.mod1.mod2]="exp"`, or one of its shorthands
// (`:arg` ≡ `v-bind:arg`, `@arg` ≡ `v-on:arg`, `#arg` ≡ `v-slot:arg`).
// Name is always the bare directive, e.g. "bind", never ":" (spec.md §3
// invariant).
type Directive struct {
	Name      string
	Arg       *Expression
	Exp       *Expression
	Modifiers []string
	Loc       sfc.SourceLocation

	// Cached is set by transform pass 7 (spec.md §4.F.7) for an `on`
	// directive whose handler qualifies for _cache[n] memoization.
	Cached     bool
	CacheIndex int
}

func (*Directive) isProp()                       {}
func (d *Directive) Location() sfc.SourceLocation { return d.Loc }

// ExpressionKind distinguishes a simple textual expression from a compound
// one built from interleaved static/dynamic pieces.
type ExpressionKind int

const (
	SimpleExpr ExpressionKind = iota
	CompoundExpr
)

// Expression is `Simple{content, is_static, identifiers?}` or
// `Compound{children}` per spec.md §3.
type Expression struct {
	Kind        ExpressionKind
	Content     string // Simple only
	IsStatic    bool
	Identifiers []string // not populated by the parser or croquis; croquis records references in Model.TemplateExpressions
	Children    []*Expression // Compound only
	Loc         sfc.SourceLocation
}

// NewSimpleExpression builds a Simple expression, storing content as given;
// it does not trim. Callers trim where spec.md 4.C asks for it (emitText
// trims interpolation content before calling this).
func NewSimpleExpression(content string, isStatic bool, loc sfc.SourceLocation) *Expression {
	return &Expression{Kind: SimpleExpr, Content: content, IsStatic: isStatic, Loc: loc}
}
