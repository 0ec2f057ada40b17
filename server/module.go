package server

import (
	"context"

	"github.com/titpetric/platform"
)

// Module mounts the debugging console's routes, following
// server/tour/handler.go's Module{platform.UnimplementedModule}/NewModule/
// Name/Mount shape.
type Module struct {
	platform.UnimplementedModule
}

// NewModule creates a new console module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "vize-console"
}

// Mount registers the console routes.
func (m *Module) Mount(_ context.Context, r platform.Router) error {
	r.Post("/compile", handleCompile)
	r.Post("/lint", handleLint)
	r.Post("/hover", handleHover)
	r.Get("/rule/{namespace}/{rule}", handleRule)
	return nil
}
