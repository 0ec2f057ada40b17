// Package lsp implements the "vize lsp" subcommand: start the stdio
// language server (lsp.Server) over the process's own stdin/stdout,
// following cmd/vuego/commands/tour/tour.go's flag-then-serve shape.
package lsp

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vizehq/vize/lsp"
)

// Run executes the lsp command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("lsp", flag.ContinueOnError)
	root := fs.String("root", "", "workspace root directory (defaults to the current directory)")
	tsPath := fs.String("ts-server", "", "path to an external TypeScript language server binary")

	if err := fs.Parse(args); err != nil {
		return err
	}

	workspaceRoot := *root
	if workspaceRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving workspace root: %w", err)
		}
		workspaceRoot = wd
	}

	log.Print("vize lsp: serving over stdio")
	srv := lsp.NewServer(os.Stdin, os.Stdout, workspaceRoot, *tsPath)
	return srv.Run()
}

// Usage returns the usage string for the lsp command.
func Usage() string {
	return `vize lsp [options]

Start the vize language server over stdio.

Options:
  -root string        workspace root directory (default: current directory)
  -ts-server string    path to an external TypeScript language server binary

Examples:
  vize lsp
  vize lsp -root ./src -ts-server tsgo`
}
