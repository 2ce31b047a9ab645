// Package accordion implements the single-open accordion problem.
package accordion

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// Item is one accordion section.
type Item struct {
	ID      int
	Title   string
	Content string
}

// Items are the fixed accordion sections.
var Items = []Item{
	{ID: 1, Title: "What is React?", Content: "React is a JavaScript library for building user interfaces, created by Facebook."},
	{ID: 2, Title: "How does useState work?", Content: "useState is a Hook that lets you add state to functional components. It returns a state variable and a setter function."},
	{ID: 3, Title: "What are Hooks?", Content: "Hooks are functions that let you use state and other React features in functional components."},
}

// State holds the open item id; zero means every item is closed.
type State struct {
	OpenID int `json:"open_id"`
}

// New opens the first item.
func New() State {
	return State{OpenID: 1}
}

// Toggle opens id, or closes it when it is already open.
func (s State) Toggle(id int) State {
	if s.OpenID == id {
		return State{}
	}
	return State{OpenID: id}
}

// Component adapts State to the widget runtime.
type Component struct{}

// View renders the accordion.
func (Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	state, err := widget.Load(ctx, inst, New)
	if err != nil {
		return nil, err
	}
	return view(inst, state), nil
}

// Handle applies toggle.
func (Component) Handle(ctx context.Context, inst widget.Instance, action string, form url.Values) error {
	if action != "toggle" {
		return fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
	}
	id, err := strconv.Atoi(form.Get("id"))
	if err != nil || !known(id) {
		return fmt.Errorf("%w: accordion item %q", widget.ErrUnknownAction, form.Get("id"))
	}
	return widget.Update(ctx, inst, New, func(state State) (State, error) {
		return state.Toggle(id), nil
	})
}

func known(id int) bool {
	for _, item := range Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func view(inst widget.Instance, state State) templ.Component {
	return widget.Frame(inst, "accordion", func(_ context.Context, m *widget.Markup) {
		m.Raw(`<ul class="accordion-list">`)
		for _, item := range Items {
			m.Raw(`<li class="accordion-item">`)
			widget.ActionButton(m, inst, "toggle", "accordion-item-title", item.Title+" ↓", false, [2]string{"id", strconv.Itoa(item.ID)})
			if item.ID == state.OpenID {
				m.Raw(`<p class="accordion-item-content">`).Text(item.Content).Raw("</p>")
			}
			m.Raw("</li>")
		}
		m.Raw("</ul>")
	})
}
