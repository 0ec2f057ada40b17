// Command vize-console starts the debugging console (server.Module) as its
// own process, the way cmd/vuego/commands/tour/tour.go starts the tour
// module via the platform — a separate binary rather than a cmd/vize
// subcommand because SPEC_FULL.md scopes cmd/vize to compile/lint/lsp only.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/titpetric/platform"

	"github.com/vizehq/vize/server"
)

func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	fs := flag.NewFlagSet("vize-console", flag.ContinueOnError)
	addr := fs.String("addr", ":8090", "HTTP server address")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	log.Print("Serving vize debugging console")

	opts := platform.NewOptions()
	opts.ServerAddr = *addr

	p := platform.New(opts)
	p.Register(server.NewModule())

	if err := p.Start(context.Background()); err != nil {
		return err
	}

	p.Wait()
	return nil
}
