// Package registry indexes practice problems into an immutable, ordered list
// of routable entries.
package registry

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/louisbranch/practice.space/internal/problems/widget"
)

var (
	// ErrDuplicateSlug reports two sources that derive the same route.
	ErrDuplicateSlug = errors.New("duplicate problem slug")
	// ErrMissingComponent reports a source with no component bound to it.
	ErrMissingComponent = errors.New("problem component is missing")
	// ErrUnknownCategory reports a category outside the supported set.
	ErrUnknownCategory = errors.New("unknown problem category")
	// ErrInvalidPath reports a source path with no usable base name.
	ErrInvalidPath = errors.New("invalid problem path")
)

// Category groups problems on the home page and in routes.
type Category string

// CategoryFrontend is the only category currently served.
const CategoryFrontend Category = "frontend"

// Categories lists every supported category in display order.
func Categories() []Category {
	return []Category{CategoryFrontend}
}

// Valid reports whether c is a supported category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Meta is the optional descriptive record attached to a component.
type Meta struct {
	Title    string
	Category Category
}

// Module pairs a component with its optional metadata.
type Module struct {
	Component widget.Component
	Meta      *Meta
}

// Source is one discovered problem before indexing.
type Source struct {
	Path   string
	Module Module
}

// Entry is one routable problem.
type Entry struct {
	ID        string
	Slug      string
	Path      string
	Title     string
	Category  Category
	Component widget.Component
}

// Registry is the immutable, ordered set of problem entries.
type Registry struct {
	entries []Entry
}

// Build indexes sources in order. Duplicate slugs within a category, missing
// components, unknown categories and unusable paths are all reported; the
// returned error joins every problem found.
func Build(sources []Source) (*Registry, error) {
	entries := make([]Entry, 0, len(sources))
	seen := make(map[string]string, len(sources))
	var errs []error

	for _, source := range sources {
		entry, err := newEntry(source)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if first, ok := seen[entry.Path]; ok {
			errs = append(errs, fmt.Errorf("%w: %s from %s and %s", ErrDuplicateSlug, entry.Path, first, source.Path))
			continue
		}
		seen[entry.Path] = source.Path
		entries = append(entries, entry)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Registry{entries: entries}, nil
}

func newEntry(source Source) (Entry, error) {
	base := BaseName(source.Path)
	if base == "" {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidPath, source.Path)
	}
	if source.Module.Component == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrMissingComponent, source.Path)
	}

	category := CategoryFrontend
	title := ""
	if meta := source.Module.Meta; meta != nil {
		if meta.Category != "" {
			category = meta.Category
		}
		title = strings.TrimSpace(meta.Title)
	}
	if !category.Valid() {
		return Entry{}, fmt.Errorf("%w: %q in %s", ErrUnknownCategory, category, source.Path)
	}
	if title == "" {
		title = Titleize(base)
	}

	slug := Slugify(base)
	return Entry{
		ID:        string(category) + "-" + slug,
		Slug:      slug,
		Path:      "/" + string(category) + "/" + slug,
		Title:     title,
		Category:  category,
		Component: source.Module.Component,
	}, nil
}

// BaseName returns the last path element without its extension.
func BaseName(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return ""
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}

// Entries returns a copy of every entry in registry order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Lookup returns the first entry whose slug matches.
func (r *Registry) Lookup(slug string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	for _, entry := range r.entries {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return Entry{}, false
}


// ByCategory returns the entries in category, in registry order.
func (r *Registry) ByCategory(category Category) []Entry {
	if r == nil {
		return nil
	}
	var out []Entry
	for _, entry := range r.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}
