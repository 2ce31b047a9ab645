package problems

import (
	"net/http"

	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ProblemPattern, h.handleProblem)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProblemSlash, h.handleTrailingSlash)
	mux.HandleFunc(http.MethodPost+" "+routepath.ActionPattern, h.handleAction)
	mux.HandleFunc(http.MethodPost+" "+routepath.ResetPattern, h.handleReset)
	mux.HandleFunc(routepath.FrontendPrefix, h.handleNotFound)
}
