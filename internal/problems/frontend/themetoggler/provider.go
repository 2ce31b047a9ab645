package themetoggler

import "errors"

// Theme is the active color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrNoThemeProvider is returned when a theme consumer is built without a
// provider.
var ErrNoThemeProvider = errors.New("theme consumer must be used within a theme provider")

// ThemeCapability is what a provider hands to the components below it.
type ThemeCapability interface {
	Theme() Theme
	Toggle()
}

// Styles are the provider's conditional colors.
type Styles struct {
	Color      string
	Background string
}

// Provider owns the theme for its subtree.
type Provider struct {
	theme Theme
}

// NewProvider returns a provider starting at theme. Unknown themes start light.
func NewProvider(theme Theme) *Provider {
	if theme != Dark {
		theme = Light
	}
	return &Provider{theme: theme}
}

// Theme returns the current theme.
func (p *Provider) Theme() Theme {
	return p.theme
}

// Toggle switches between light and dark.
func (p *Provider) Toggle() {
	if p.theme == Light {
		p.theme = Dark
		return
	}
	p.theme = Light
}

// Styles returns the colors for the current theme.
func (p *Provider) Styles() Styles {
	if p.theme == Dark {
		return Styles{Color: "#ffffff", Background: "#000000"}
	}
	return Styles{Color: "#000000", Background: "#ffffff"}
}

func missing(capability ThemeCapability) bool {
	if capability == nil {
		return true
	}
	p, ok := capability.(*Provider)
	return ok && p == nil
}
