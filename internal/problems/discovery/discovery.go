// Package discovery finds problem manifests in a filesystem and binds each to
// its compiled component.
package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"gopkg.in/yaml.v3"
)

// Pattern is the manifest glob scanned at startup.
const Pattern = "problems/frontend/**/*.yaml"

// Manifest is the optional metadata file shipped next to each problem.
type Manifest struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// Discover returns one source per manifest matching pattern, ordered by path.
// The component for each manifest is looked up by the manifest's base name; a
// manifest without a component yields a source with a nil component so the
// registry reports it.
func Discover(fsys fs.FS, pattern string, components map[string]widget.Component) ([]registry.Source, error) {
	if fsys == nil {
		return nil, errors.New("discovery fs is required")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid discovery pattern %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	sources := make([]registry.Source, 0, len(matches))
	for _, match := range matches {
		manifest, err := readManifest(fsys, match)
		if err != nil {
			return nil, err
		}
		base := registry.BaseName(match)
		sources = append(sources, registry.Source{
			Path: match,
			Module: registry.Module{
				Component: components[base],
				Meta: &registry.Meta{
					Title:    strings.TrimSpace(manifest.Title),
					Category: registry.Category(strings.TrimSpace(manifest.Category)),
				},
			},
		})
	}
	return sources, nil
}

func readManifest(fsys fs.FS, name string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", name, err)
	}
	var manifest Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("decode manifest %s: %w", name, err)
	}
	return manifest, nil
}
