// Package todolist implements the todo list problem.
package todolist

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// Item is one todo entry.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List is the todo list state.
type List struct {
	Items []Item `json:"items"`
	Input string `json:"input"`
}

// New returns the initial list with its seed item.
func New() List {
	return List{Items: []Item{{ID: "1", Text: "be god"}}}
}

// Add appends text as a new item and clears the input. Empty text is ignored.
func (l List) Add(id string, text string) List {
	if text == "" {
		return l
	}
	items := append(append([]Item(nil), l.Items...), Item{ID: id, Text: text})
	return List{Items: items}
}

// Remove drops the item with id when present.
func (l List) Remove(id string) List {
	items := make([]Item, 0, len(l.Items))
	for _, item := range l.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	l.Items = items
	return l
}

// Toggle flips the done flag of the item with id.
func (l List) Toggle(id string) List {
	items := append([]Item(nil), l.Items...)
	for i := range items {
		if items[i].ID == id {
			items[i].Done = !items[i].Done
		}
	}
	l.Items = items
	return l
}

// Component adapts List to the widget runtime.
type Component struct {
	// NewID generates item ids; defaults to random UUIDs.
	NewID func() string
}

// View renders the list.
func (c Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	list, err := widget.Load(ctx, inst, New)
	if err != nil {
		return nil, err
	}
	return view(inst, list), nil
}

// Handle applies input, add, remove or toggle.
func (c Component) Handle(ctx context.Context, inst widget.Instance, action string, form url.Values) error {
	return widget.Update(ctx, inst, New, func(list List) (List, error) {
		switch action {
		case "input":
			list.Input = form.Get("text")
		case "add":
			text := form.Get("text")
			if text == "" {
				list.Input = ""
				break
			}
			list = list.Add(c.newID(), text)
		case "remove":
			list = list.Remove(form.Get("id"))
		case "toggle":
			list = list.Toggle(form.Get("id"))
		default:
			return list, fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
		}
		return list, nil
	})
}

func (c Component) newID() string {
	if c.NewID != nil {
		return c.NewID()
	}
	return uuid.NewString()
}

func view(inst widget.Instance, list List) templ.Component {
	return widget.Frame(inst, "todo-list", func(_ context.Context, m *widget.Markup) {
		m.Raw(`<form method="post" class="todo-add" data-async`).Attr("action", inst.Action("add")).Raw(">")
		m.Raw(`<input type="text" name="text" aria-label="New todo"`).Attr("value", list.Input).
			Attr("data-sync", inst.Action("input")).Raw(">")
		m.Raw(`<button type="submit">+</button></form>`)
		if len(list.Items) == 0 {
			m.Raw("<p>No todos yet.</p>")
			return
		}
		m.Raw("<ul>")
		for _, item := range list.Items {
			m.Raw("<li>")
			m.Raw(`<form method="post" class="inline" data-async`).Attr("action", inst.Action("toggle")).Raw(">")
			m.Raw(`<input type="hidden" name="id"`).Attr("value", item.ID).Raw(">")
			m.Raw(`<input type="checkbox" data-autosubmit`).Attr("aria-label", item.Text).Flag("checked", item.Done).Raw("></form>")
			m.Text(item.Text)
			widget.ActionButton(m, inst, "remove", "", "Delete", false, [2]string{"id", item.ID})
			m.Raw("</li>")
		}
		m.Raw("</ul>")
	})
}
