// Package codegen implements the render-function emitter (spec.md §4.G):
// given a transformed template AST and a helper set, it writes a JS render
// function plus its import/const preamble directly to a strings.Builder,
// the same direct-writer style the teacher's vue.go renderNode/renderAttrs
// use for HTML output, retargeted from HTML bytes to JS source text.
package codegen

import (
	"strings"

	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/transform"
)

// Mode selects the render function's calling convention (spec.md §4.G).
type Mode int

const (
	ModeModule Mode = iota
	ModeFunction
	ModeSSR
)

// Options configures a Generate call.
type Options struct {
	Mode          Mode
	Vapor         bool
	ScopeID       string
	RuntimeModule string // ESM import source in module mode, e.g. "vue"
	RuntimeGlobal string // global binding in function mode, e.g. "Vue"
}

// Output is { code, preamble, source_map? } per spec.md §4.G (source maps
// are out of scope: SPEC_FULL.md names no pack library for a JS
// source-mapper, so this is a justified stdlib-only corner of codegen).
type Output struct {
	Preamble string
	Code     string
}

// Generate emits a render function from a transform.Result.
func Generate(res *transform.Result, m *croquis.Model, opts Options) *Output {
	g := &generator{model: m, opts: opts}

	components, directives := ResolveAssets(res.Root.Children, m)

	var body strings.Builder
	WriteAssetResolution(&body, components, directives)
	g.writeHoists(&body, res.Root.Hoists)
	g.writeRenderFunction(&body, res.Root.Children)

	return &Output{
		Preamble: g.preamble(res.Helpers.List()),
		Code:     body.String(),
	}
}

type generator struct {
	model      *croquis.Model
	opts       Options
	cacheWrite bool // no emission path sets this; _cache[i] writes are not emitted here
}

// preamble declares helpers per spec.md §4.G: ESM import in module mode,
// destructured const in function mode. Helper names are aliased with a
// leading underscore, the runtime's own naming convention
// (createVNode -> _createVNode), so emitted call sites never collide with
// user-scope identifiers.
func (g *generator) preamble(helpers []string) string {
	if len(helpers) == 0 {
		return ""
	}
	var sb strings.Builder
	switch g.opts.Mode {
	case ModeFunction:
		sb.WriteString("const { ")
		for i, h := range helpers {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(h + ": _" + h)
		}
		sb.WriteString(" } = " + runtimeGlobal(g.opts) + "\n")
	default:
		sb.WriteString("import { ")
		for i, h := range helpers {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(h + " as _" + h)
		}
		sb.WriteString(" } from \"" + runtimeModule(g.opts) + "\"\n")
	}
	return sb.String()
}

func runtimeModule(opts Options) string {
	if opts.RuntimeModule != "" {
		return opts.RuntimeModule
	}
	return "vue"
}

func runtimeGlobal(opts Options) string {
	if opts.RuntimeGlobal != "" {
		return opts.RuntimeGlobal
	}
	return "Vue"
}

func helperRef(name string) string { return "_" + name }
