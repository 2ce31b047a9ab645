// Package home serves the problem index.
package home

import (
	"net/http"

	"github.com/louisbranch/practice.space/internal/problems/registry"
	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/pagerender"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/weberror"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
	"github.com/louisbranch/practice.space/internal/services/practice/templates"
	"go.uber.org/zap"
)

// Module provides the root routes.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the index and the root fallback.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps, logger: deps.Logger}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

type handlers struct {
	deps   module.Dependencies
	logger *zap.Logger
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	var links []templates.ProblemLink
	if h.deps.Registry != nil {
		for _, entry := range h.deps.Registry.ByCategory(registry.CategoryFrontend) {
			links = append(links, templates.ProblemLink{ID: entry.ID, Title: entry.Title, Path: entry.Path})
		}
	}
	err := pagerender.WritePage(w, r, h.deps.SchemePolicy, pagerender.Page{
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.Home(links, loc),
	})
	if err != nil {
		h.logger.Error("render home", zap.Error(err))
		weberror.WriteAppError(w, r, http.StatusInternalServerError, loc, lang)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.deps.Languages.Resolve(w, r)
	weberror.WriteAppError(w, r, http.StatusNotFound, loc, lang)
}
