// Package sfc splits a .vize single-file-component source into its
// constituent blocks (template, script, script setup, styles, custom
// blocks) with byte-exact spans, grounded on the teacher's
// fs.ReadFile+html.Parse loading flow (component.go, loader.go) and on
// buke-esbuild-plugin-vue-go's one-file/several-logical-parts splitting.
package sfc

import "github.com/vizehq/vize/arena"

// Block is one top-level tag inside an SFC: <template>, <script>,
// <script setup>, <style[...]>, or a custom block.
type Block struct {
	Tag     string
	Attrs   arena.Map[string]
	Content string
	Lang    string
	Loc     SourceLocation
}

// Attr returns an attribute value and whether it was present.
func (b *Block) Attr(name string) (string, bool) {
	return b.Attrs.Get(name)
}

// HasAttr reports whether name was present (value may be empty).
func (b *Block) HasAttr(name string) bool {
	return b.Attrs.Has(name)
}

// Scoped reports whether a <style> block carries the `scoped` attribute.
func (b *Block) Scoped() bool {
	return b.HasAttr("scoped")
}

// Module returns the CSS-modules identifier for a <style module[="x"]>
// block, defaulting to "$style" per spec.md 4.B edge cases.
func (b *Block) Module() (string, bool) {
	if !b.HasAttr("module") {
		return "", false
	}
	v, _ := b.Attr("module")
	if v == "" {
		return "$style", true
	}
	return v, true
}

// Descriptor is the parsed shape of one SFC source file.
type Descriptor struct {
	Filename string
	Source   string

	TemplateBlock    *Block
	ScriptBlock      *Block
	ScriptSetupBlock *Block
	StyleBlocks      []*Block
	CustomBlocks     []*Block
}

// HasScoped reports whether any style block is scoped, driving the SFC
// driver's scope-id attribute emission (spec.md 4.H step 2).
func (d *Descriptor) HasScoped() bool {
	for _, s := range d.StyleBlocks {
		if s.Scoped() {
			return true
		}
	}
	return false
}

// ErrorCode names a taxonomy of SFC-splitter parse errors (spec.md §7).
type ErrorCode string

const (
	ErrDuplicateTemplate ErrorCode = "DUPLICATE_TEMPLATE"
	ErrDuplicateScript   ErrorCode = "DUPLICATE_SCRIPT"
	ErrDuplicateSetup    ErrorCode = "DUPLICATE_SCRIPT_SETUP"
	ErrUnexpectedEOF     ErrorCode = "UNEXPECTED_EOF"
	ErrMalformedTag      ErrorCode = "MALFORMED_TAG"
)

// ParseError is a splitter-level diagnostic, always fatal for the splitter
// per spec.md §7 ("fatal for SFC splitter if essential structure is
// malformed").
type ParseError struct {
	Code ErrorCode
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return string(e.Code) + ": " + e.Msg
}
