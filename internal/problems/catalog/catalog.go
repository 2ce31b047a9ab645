// Package catalog assembles the shipped practice problems into a registry.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/louisbranch/practice.space/internal/problems/discovery"
	"github.com/louisbranch/practice.space/internal/problems/frontend/accordion"
	"github.com/louisbranch/practice.space/internal/problems/frontend/authpage"
	"github.com/louisbranch/practice.space/internal/problems/frontend/counter"
	"github.com/louisbranch/practice.space/internal/problems/frontend/dropdown"
	"github.com/louisbranch/practice.space/internal/problems/frontend/loginform"
	"github.com/louisbranch/practice.space/internal/problems/frontend/themetoggler"
	"github.com/louisbranch/practice.space/internal/problems/frontend/todolist"
	"github.com/louisbranch/practice.space/internal/problems/frontend/userdirectory"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

//go:embed all:problems
var manifestFS embed.FS

// Components returns the compiled components keyed by manifest base name.
func Components(deps widget.Dependencies) map[string]widget.Component {
	deps = deps.WithDefaults()
	fetcher := userdirectory.HTTPFetcher{
		Client:  deps.HTTPClient,
		URL:     deps.UsersURL,
		Timeout: deps.FetchTimeout,
		Tracer:  deps.Tracer,
	}
	return map[string]widget.Component{
		"UserDirectory": userdirectory.NewComponent(fetcher, deps.Logger.Named("userdirectory")),
		"TodoList":      todolist.Component{},
		"Accordion":     accordion.Component{},
		"LoginForm":     loginform.NewComponent(deps.Clock),
		"Counter":       counter.Component{},
		"ThemeToggler":  themetoggler.Component{},
		"AuthPage":      authpage.Component{},
		"Dropdown":      dropdown.Component{},
	}
}

// Load discovers the embedded manifests and builds the registry.
func Load(deps widget.Dependencies) (*registry.Registry, error) {
	return LoadFrom(manifestFS, Components(deps))
}

// LoadFrom builds a registry from manifests in fsys bound to components.
func LoadFrom(fsys fs.FS, components map[string]widget.Component) (*registry.Registry, error) {
	sources, err := discovery.Discover(fsys, discovery.Pattern, components)
	if err != nil {
		return nil, fmt.Errorf("discover problems: %w", err)
	}
	reg, err := registry.Build(sources)
	if err != nil {
		return nil, fmt.Errorf("build problem registry: %w", err)
	}
	return reg, nil
}
