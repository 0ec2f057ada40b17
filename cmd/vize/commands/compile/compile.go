// Package compile implements the "vize compile" subcommand: split, analyze,
// transform and generate one .vize SFC, following
// cmd/vuego/commands/render/render.go's flag/positional-argument shape.
package compile

import (
	"flag"
	"fmt"
	"os"

	"github.com/vizehq/vize"
	"github.com/vizehq/vize/codegen"
)

// Run executes the compile command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, Usage()+"\n")
	}

	function := fs.Bool("function", false, "generate a `function` (non-module) render function")
	ssr := fs.Bool("ssr", false, "generate a server-side render function")
	vapor := fs.Bool("vapor", false, "generate Vapor-mode output (no virtual DOM)")
	hoistStatic := fs.Bool("hoist-static", false, "hoist static subtrees out of the render function")
	cacheHandlers := fs.Bool("cache-handlers", false, "cache inline event handlers across re-renders")
	runtimeModule := fs.String("runtime-module", "vue", "runtime import specifier for module mode")
	runtimeGlobal := fs.String("runtime-global", "Vue", "runtime global identifier for function mode")
	out := fs.String("out", "", "write generated code to this file instead of stdout")

	// Flags may appear before or after the file argument.
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != 1 {
		fs.Usage()
		return fmt.Errorf("compile: requires exactly 1 argument")
	}

	source, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", positional[0], err)
	}

	mode := codegen.ModeModule
	if *function {
		mode = codegen.ModeFunction
	}

	res, err := vize.Compile(positional[0], string(source), vize.Options{
		Mode:          mode,
		SSR:           *ssr,
		Vapor:         *vapor,
		HoistStatic:   *hoistStatic,
		CacheHandlers: *cacheHandlers,
		RuntimeModule: *runtimeModule,
		RuntimeGlobal: *runtimeGlobal,
	})
	if err != nil {
		return fmt.Errorf("compiling %s: %w", positional[0], err)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "%s: %v\n", positional[0], e)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", positional[0], w)
	}

	output := res.Code
	if res.CSS != "" {
		output += "\n/* scoped css, scope_id=" + res.ScopeID + " */\n" + res.CSS
	}

	if *out == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(*out, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	return nil
}

// Usage returns the usage string for the compile command.
func Usage() string {
	return `vize compile <file.vize> [options]

Compile a Vue single-file component into a render function module.

Options:
  -function             generate a function (non-module) render function
  -ssr                   generate a server-side render function
  -vapor                 generate Vapor-mode output
  -hoist-static          hoist static subtrees
  -cache-handlers        cache inline event handlers
  -runtime-module string import specifier for module mode (default "vue")
  -runtime-global string global identifier for function mode (default "Vue")
  -out string            write output to this file instead of stdout

Examples:
  vize compile Counter.vize
  vize compile Counter.vize -ssr -out counter.ssr.js`
}
