// Package vize is the SFC compiler driver (spec.md §4.H): it runs the
// block splitter, analyzes script(s) into a Croquis model, transforms the
// template, generates the render function, and composes scoped styles,
// mirroring the teacher's top-level `Vue` struct (`vue.go`: cache, `Funcs`,
// `Render`) restructured from a template-engine entry point into a
// compile-to-source entry point.
package vize

import (
	"fmt"

	"github.com/vizehq/vize/arena"
	"github.com/vizehq/vize/codegen"
	"github.com/vizehq/vize/croquis"
	"github.com/vizehq/vize/script"
	"github.com/vizehq/vize/sfc"
	"github.com/vizehq/vize/style"
	"github.com/vizehq/vize/template"
	"github.com/vizehq/vize/transform"
)

// Options configures one Compile call (spec.md §4.H / §6 CLI flags).
type Options struct {
	Mode          codegen.Mode
	SSR           bool
	Vapor         bool
	HoistStatic   bool
	CacheHandlers bool
	RuntimeModule string
	RuntimeGlobal string
}

// Result is the composed compiler output (spec.md §4.H step 6).
type Result struct {
	Code     string
	CSS      string
	ScopeID  string
	Bindings *croquis.Model
	Errors   []error
	Warnings []string
}

// Compile reads filename's source (already in hand as a string — callers
// resolve fs.FS access themselves, matching the teacher's
// `Vue.loadCached` separation between filesystem I/O and rendering) and
// runs the full B->C/D->E->F->G pipeline described in spec.md §4.H.
func Compile(filename, source string, opts Options) (*Result, error) {
	res := &Result{}

	a := arena.New(len(source))
	desc, err := sfc.Split(a, filename, source)
	if err != nil {
		return nil, fmt.Errorf("vize: split %s: %w", filename, err)
	}

	scopeID := ScopeID(filename)
	res.ScopeID = scopeID

	m := croquis.NewModel()
	if err := analyzeScripts(m, desc); err != nil {
		res.Errors = append(res.Errors, err)
	}
	res.Bindings = m

	if desc.TemplateBlock != nil {
		ta := arena.New(len(desc.TemplateBlock.Content))
		root := template.Parse(ta, desc.TemplateBlock.Content)
		for _, perr := range root.Errors {
			res.Errors = append(res.Errors, perr)
		}

		tr := transform.Run(root, m, transform.Options{
			HoistStatic:   opts.HoistStatic,
			CacheHandlers: opts.CacheHandlers,
			NonInline:     opts.Mode == codegen.ModeFunction,
		})
		for _, d := range tr.Diags {
			res.Warnings = append(res.Warnings, d.Error())
		}

		out := codegen.Generate(tr, m, codegen.Options{
			Mode:          opts.Mode,
			Vapor:         opts.Vapor,
			ScopeID:       scopeID,
			RuntimeModule: opts.RuntimeModule,
			RuntimeGlobal: opts.RuntimeGlobal,
		})
		res.Code = out.Preamble + "\n" + out.Code
	}

	if len(desc.StyleBlocks) > 0 {
		css, err := style.Compose(desc.StyleBlocks, scopeID)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("vize: style compose: %w", err))
		}
		res.CSS = css
	}

	if desc.ScriptSetupBlock != nil && desc.TemplateBlock != nil {
		inlined, err := InlineSetup(desc, m, res.Code, scopeID)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("vize: setup inline: %w", err))
		} else {
			res.Code = inlined
		}
	}

	return res, nil
}

// analyzeScripts feeds whichever script block(s) are present through
// script.Analyze (spec.md §4.H step 3). A plain <script> and a
// <script setup> may coexist; both populate the same Croquis model, the
// non-setup block first so setup-scoped bindings take priority on name
// collision (matches spec.md §4.D's "script setup scope sees the
// module-scope options block").
func analyzeScripts(m *croquis.Model, desc *sfc.Descriptor) error {
	if desc.ScriptBlock != nil {
		if err := script.Analyze(m, desc.ScriptBlock.Content, desc.ScriptBlock.Lang, false); err != nil {
			return fmt.Errorf("analyzing <script>: %w", err)
		}
	}
	if desc.ScriptSetupBlock != nil {
		if err := script.Analyze(m, desc.ScriptSetupBlock.Content, desc.ScriptSetupBlock.Lang, true); err != nil {
			return fmt.Errorf("analyzing <script setup>: %w", err)
		}
	}
	return nil
}
