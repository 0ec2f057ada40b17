// Command vize is the compiler/linter/language-server CLI (spec.md §6),
// dispatching to a compile/lint/lsp subcommand the way cmd/vuego dispatches
// to render/tour, except every subcommand listed here is actually wired
// (the teacher's own commands/render and commands/tour packages are never
// called from cmd/vuego/main.go).
package main

import (
	"fmt"
	"os"

	"github.com/vizehq/vize/cmd/vize/commands/compile"
	"github.com/vizehq/vize/cmd/vize/commands/lint"
	"github.com/vizehq/vize/cmd/vize/commands/lsp"
)

type command struct {
	Run   func(args []string) error
	Usage func() string
}

var commands = map[string]command{
	"compile": {compile.Run, compile.Usage},
	"lint":    {lint.Run, lint.Usage},
	"lsp":     {lsp.Run, lsp.Usage},
}

func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	if len(os.Args) < 2 {
		usage()
		return fmt.Errorf("vize: missing subcommand")
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		usage()
		return fmt.Errorf("vize: unknown subcommand %q", os.Args[1])
	}

	return cmd.Run(os.Args[2:])
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: vize <compile|lint|lsp> [options]\n\n")
	for name, cmd := range commands {
		fmt.Fprintf(os.Stderr, "%s\n\n", name)
		fmt.Fprintln(os.Stderr, cmd.Usage())
		fmt.Fprintln(os.Stderr)
	}
}
