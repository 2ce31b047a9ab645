// Package authpage implements the auth page with a protected greeting. The
// signed-in user reaches the greeting and form through an explicit capability.
package authpage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

type state struct {
	User  *User  `json:"user,omitempty"`
	Input string `json:"input"`
}

func initial() state {
	return state{}
}

// Component adapts the provider, greeting and form to the widget runtime.
type Component struct{}

// View renders the page.
func (Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	st, err := widget.Load(ctx, inst, initial)
	if err != nil {
		return nil, err
	}
	provider := NewProvider(st.User)
	greeting, err := NewGreeting(provider)
	if err != nil {
		return nil, err
	}
	form, err := NewAuthForm(provider)
	if err != nil {
		return nil, err
	}
	return widget.Frame(inst, "auth-page", func(_ context.Context, m *widget.Markup) {
		m.Raw(`<div class="title">Auth Page</div>`)
		m.Raw("<h3>").Text(greeting.Text()).Raw("</h3>")
		m.Raw("<div><h1>Auth Form</h1>")
		m.Raw("<h1>").Text(form.Heading()).Raw("</h1>")
		m.Raw(`<form method="post" data-async`).Attr("action", inst.Action("submit")).Raw(">")
		m.Raw(`<input type="text" name="name" aria-label="Name"`).Attr("value", st.Input).
			Attr("data-sync", inst.Action("input")).Raw(">")
		m.Raw(`<button type="submit">`).Text(form.ButtonLabel()).Raw("</button></form></div>")
	}), nil
}

// Handle applies input or submit.
func (Component) Handle(ctx context.Context, inst widget.Instance, action string, values url.Values) error {
	return widget.Update(ctx, inst, initial, func(st state) (state, error) {
		provider := NewProvider(st.User)
		switch action {
		case "input":
			st.Input = values.Get("name")
		case "submit":
			form, err := NewAuthForm(provider)
			if err != nil {
				return st, err
			}
			st.Input = form.Submit(values.Get("name"))
			st.User = provider.User()
		default:
			return st, fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
		}
		return st, nil
	})
}
