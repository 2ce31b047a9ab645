// Package app composes practice modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/sessioncookie"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	// Modules mount as-is.
	Modules []module.Module
	// StatefulModules mutate session-scoped state and get a same-origin guard.
	StatefulModules []module.Module
}

// Composer wires root mux mounts.
type Composer struct{}

// Compose builds a root mux from module groups. Nil modules, empty prefixes,
// missing handlers and duplicate prefixes are rejected.
func (Composer) Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, input.Dependencies, seen, nil); err != nil {
			return nil, err
		}
	}
	guard := requireSessionSameOrigin(input.Dependencies.SchemePolicy)
	for _, feature := range input.StatefulModules {
		if feature == nil {
			return nil, fmt.Errorf("stateful module is nil")
		}
		if err := mountModule(root, feature, input.Dependencies, seen, guard); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	deps module.Dependencies,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	mount, prefix, err := resolveMount(feature, deps)
	if err != nil {
		return err
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// requireSessionSameOrigin rejects cross-origin mutations carrying a session
// cookie.
func requireSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
