// Package problems mounts registry entries under /frontend/.
package problems

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Module provides problem pages, actions and resets.
type Module struct{}

// New returns a problems module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "problems" }

// Mount wires problem route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Registry == nil {
		return module.Mount{}, errors.New("problem registry is required")
	}
	if deps.Store == nil {
		return module.Mount{}, errors.New("widget state store is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Tracer == nil {
		deps.Tracer = noop.NewTracerProvider().Tracer("problems")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.FrontendPrefix, Handler: mux}, nil
}
