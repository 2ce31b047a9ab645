// Package dropdown implements the dropdown that closes on an outside click.
package dropdown

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// Options are the selectable option letters.
var Options = []string{"A", "B", "C", "D"}

// Placeholder is the button label before any selection.
const Placeholder = "Select an Option"

// State is the dropdown state.
type State struct {
	Open     bool   `json:"open"`
	Selected string `json:"selected,omitempty"`
}

// Label returns the button text.
func (s State) Label() string {
	if s.Selected == "" {
		return Placeholder
	}
	return s.Selected
}

// Toggle opens or closes the panel.
func (s State) Toggle() State {
	s.Open = !s.Open
	return s
}

// Select records option and closes the panel.
func (s State) Select(option string) State {
	return State{Selected: "Option " + option}
}

// Outside closes the panel after a click outside the dropdown.
func (s State) Outside() State {
	if !s.Open {
		return s
	}
	s.Open = false
	return s
}

// Component adapts State to the widget runtime.
type Component struct{}

// View renders the dropdown.
func (Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	state, err := widget.Load(ctx, inst, func() State { return State{} })
	if err != nil {
		return nil, err
	}
	return view(inst, state), nil
}

// Handle applies toggle, select or outside.
func (Component) Handle(ctx context.Context, inst widget.Instance, action string, form url.Values) error {
	return widget.Update(ctx, inst, func() State { return State{} }, func(state State) (State, error) {
		switch action {
		case "toggle":
			return state.Toggle(), nil
		case "select":
			option := form.Get("option")
			if !slices.Contains(Options, option) {
				return state, fmt.Errorf("%w: option %q", widget.ErrUnknownAction, option)
			}
			return state.Select(option), nil
		case "outside":
			return state.Outside(), nil
		default:
			return state, fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
		}
	})
}

func view(inst widget.Instance, state State) templ.Component {
	return widget.Frame(inst, "dropdown", func(_ context.Context, m *widget.Markup) {
		m.Raw("<h1>Dropdown</h1>")
		m.Raw(`<div class="panel-wrapper"`)
		if state.Open {
			m.Attr("data-outside", inst.Action("outside"))
		}
		m.Raw(">")
		widget.ActionButton(m, inst, "toggle", "btn", state.Label(), false)
		if state.Open {
			m.Raw(`<ul class="panel">`)
			for _, option := range Options {
				m.Raw(`<li class="panel-option">`)
				widget.ActionButton(m, inst, "select", "", "Option "+option, false, [2]string{"option", option})
				m.Raw("</li>")
			}
			m.Raw("</ul>")
		}
		m.Raw("</div>")
	})
}
