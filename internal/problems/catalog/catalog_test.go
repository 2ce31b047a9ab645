package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

func TestLoadShipsEveryProblemInOrder(t *testing.T) {
	t.Parallel()

	reg, err := Load(widget.Dependencies{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var paths, titles []string
	for _, entry := range reg.Entries() {
		paths = append(paths, entry.Path)
		titles = append(titles, entry.Title)
		if entry.Component == nil {
			t.Fatalf("entry %s has no component", entry.ID)
		}
	}
	wantPaths := []string{
		"/frontend/user-directory",
		"/frontend/todo-list",
		"/frontend/accordion",
		"/frontend/login-form",
		"/frontend/counter",
		"/frontend/theme-toggler",
		"/frontend/auth-page",
		"/frontend/dropdown",
	}
	if diff := cmp.Diff(wantPaths, paths); diff != "" {
		t.Fatalf("entry paths (-want +got):\n%s", diff)
	}
	wantTitles := []string{
		"User Directory Filter",
		"Todo List",
		"Accordion",
		"Login Form with Validation",
		"Counter App with Undo",
		"Theme Toggler with Context API and Custom Hooks",
		"Auth Context with Protected Greeting",
		"Click Outside to Close Dropdown",
	}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Fatalf("entry titles (-want +got):\n%s", diff)
	}
}

func TestEveryComponentHasAManifest(t *testing.T) {
	t.Parallel()

	reg, err := Load(widget.Dependencies{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := reg.Len(), len(Components(widget.Dependencies{})); got != want {
		t.Fatalf("registry has %d entries, want one per component (%d)", got, want)
	}
}

func TestLoadFromReportsMissingComponent(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"problems/frontend/9. Extra/Extra.yaml": {Data: []byte("title: Extra\n")},
	}
	_, err := LoadFrom(fsys, Components(widget.Dependencies{}))
	if !errors.Is(err, registry.ErrMissingComponent) {
		t.Fatalf("LoadFrom() error = %v, want ErrMissingComponent", err)
	}
}

func TestLoadFromReportsDuplicateSlug(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"problems/frontend/1. A/Counter.yaml": {Data: []byte("")},
		"problems/frontend/2. B/Counter.yaml": {Data: []byte("")},
	}
	_, err := LoadFrom(fsys, Components(widget.Dependencies{}))
	if !errors.Is(err, registry.ErrDuplicateSlug) {
		t.Fatalf("LoadFrom() error = %v, want ErrDuplicateSlug", err)
	}
}
