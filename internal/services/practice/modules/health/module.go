// Package health serves the constant API health payload.
package health

import (
	"net/http"

	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/httpx"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
)

// Message is the fixed health payload text.
const Message = "Server is running correctly!"

// Response is the health payload.
type Response struct {
	Message string `json:"message"`
}

// Module provides the /api/ routes.
type Module struct{}

// New returns a health module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route. Any method is accepted.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Health, handleHealth)
	mux.HandleFunc(routepath.APIPrefix, handleNotFound)
	return module.Mount{
		Prefix:  routepath.APIPrefix,
		Handler: httpx.Chain(mux, httpx.AllowCORS()),
	}, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.DiscardBody(r)
	_ = httpx.WriteJSON(w, http.StatusOK, Response{Message: Message})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"error": http.StatusText(http.StatusNotFound)})
}
