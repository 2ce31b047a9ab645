// Package themetoggler implements the theme toggler. The theme is passed to
// consumers as an explicit capability built by a provider.
package themetoggler

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// ThemeButton shows and toggles the provider's theme.
type ThemeButton struct {
	capability ThemeCapability
}

// NewThemeButton binds a button to capability.
func NewThemeButton(capability ThemeCapability) (*ThemeButton, error) {
	if missing(capability) {
		return nil, ErrNoThemeProvider
	}
	return &ThemeButton{capability: capability}, nil
}

// Label returns the button text.
func (b *ThemeButton) Label() string {
	return "Current Theme: " + string(b.capability.Theme())
}

// Click toggles the theme.
func (b *ThemeButton) Click() {
	b.capability.Toggle()
}

type state struct {
	Theme Theme `json:"theme"`
}

func initial() state {
	return state{Theme: Light}
}

// Component adapts the provider and button to the widget runtime.
type Component struct{}

// View renders the provider frame and its button.
func (Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	st, err := widget.Load(ctx, inst, initial)
	if err != nil {
		return nil, err
	}
	provider := NewProvider(st.Theme)
	button, err := NewThemeButton(provider)
	if err != nil {
		return nil, err
	}
	styles := provider.Styles()
	return widget.Frame(inst, "theme-toggler", func(_ context.Context, m *widget.Markup) {
		m.Raw(`<div class="theme-provider"`).
			Attr("style", fmt.Sprintf("color: %s; background-color: %s;", styles.Color, styles.Background)).
			Attr("data-theme", string(provider.Theme())).Raw(">")
		m.Raw("<div><h1>Theme Toggler using Context API and Custom Hooks</h1>")
		widget.ActionButton(m, inst, "toggle", "", button.Label(), false)
		m.Raw("</div></div>")
	}), nil
}

// Handle applies toggle through the button.
func (Component) Handle(ctx context.Context, inst widget.Instance, action string, _ url.Values) error {
	if action != "toggle" {
		return fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
	}
	return widget.Update(ctx, inst, initial, func(st state) (state, error) {
		provider := NewProvider(st.Theme)
		button, err := NewThemeButton(provider)
		if err != nil {
			return st, err
		}
		button.Click()
		return state{Theme: provider.Theme()}, nil
	})
}
