package discovery

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

type stubComponent struct{}

func (stubComponent) View(context.Context, widget.Instance) (templ.Component, error) {
	return templ.NopComponent, nil
}

func (stubComponent) Handle(context.Context, widget.Instance, string, url.Values) error {
	return nil
}

func TestDiscoverOrdersByPathAndBindsComponents(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"problems/frontend/2. Todo List/TodoList.yaml":           {Data: []byte("title: Todo List\n")},
		"problems/frontend/1. User Directory/UserDirectory.yaml": {Data: []byte("title: User Directory Filter\ncategory: frontend\n")},
		"problems/frontend/1. User Directory/notes.txt":          {Data: []byte("ignored")},
		"problems/backend/Server.yaml":                           {Data: []byte("title: ignored\n")},
	}
	components := map[string]widget.Component{
		"TodoList":      stubComponent{},
		"UserDirectory": stubComponent{},
	}

	sources, err := Discover(fsys, Pattern, components)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("len(sources) = %d, want 2", len(sources))
	}
	if got := sources[0].Path; got != "problems/frontend/1. User Directory/UserDirectory.yaml" {
		t.Fatalf("sources[0].Path = %q", got)
	}
	if got := sources[0].Module.Meta.Title; got != "User Directory Filter" {
		t.Fatalf("sources[0] title = %q", got)
	}
	for _, source := range sources {
		if source.Module.Component == nil {
			t.Fatalf("source %s has no component", source.Path)
		}
	}

	reg, err := registry.Build(sources)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if entry, ok := reg.Lookup("user-directory"); !ok || entry.Path != "/frontend/user-directory" {
		t.Fatalf("Lookup(user-directory) = %+v, %v", entry, ok)
	}
}

func TestDiscoverLeavesUnmatchedComponentNil(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"problems/frontend/9. Ghost/Ghost.yaml": {Data: []byte("")},
	}
	sources, err := Discover(fsys, Pattern, nil)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(sources) != 1 || sources[0].Module.Component != nil {
		t.Fatalf("sources = %+v, want one source with nil component", sources)
	}
	if _, err := registry.Build(sources); !errors.Is(err, registry.ErrMissingComponent) {
		t.Fatalf("Build() error = %v, want ErrMissingComponent", err)
	}
}

func TestDiscoverRejectsUnknownManifestFields(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"problems/frontend/Counter.yaml": {Data: []byte("title: Counter\nauthor: someone\n")},
	}
	if _, err := Discover(fsys, Pattern, nil); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestDiscoverRejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := Discover(fstest.MapFS{}, "problems/[", nil); err == nil {
		t.Fatal("expected invalid pattern error")
	}
}

func TestDiscoverEmptyTree(t *testing.T) {
	t.Parallel()

	sources, err := Discover(fstest.MapFS{}, Pattern, nil)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(sources) != 0 {
		t.Fatalf("len(sources) = %d, want 0", len(sources))
	}
}
