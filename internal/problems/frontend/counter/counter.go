// Package counter implements the counter with undo history.
package counter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// History is the ordered list of counter values; the last element is shown.
type History []int

// New returns the initial history [0].
func New() History {
	return History{0}
}

// Value returns the current counter value.
func (h History) Value() int {
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1]
}

// Increment appends the current value plus one.
func (h History) Increment() History {
	return append(h.clone(), h.Value()+1)
}

// Decrement appends the current value minus one.
func (h History) Decrement() History {
	return append(h.clone(), h.Value()-1)
}

// CanUndo reports whether there is a previous value to return to.
func (h History) CanUndo() bool {
	return len(h) > 1
}

// Undo drops the last value unless only the initial value remains.
func (h History) Undo() History {
	if !h.CanUndo() {
		return h.clone()
	}
	return h.clone()[:len(h)-1]
}

func (h History) clone() History {
	if len(h) == 0 {
		return New()
	}
	return append(History(nil), h...)
}

// Component adapts History to the widget runtime.
type Component struct{}

// View renders the counter.
func (Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	history, err := widget.Load(ctx, inst, New)
	if err != nil {
		return nil, err
	}
	return view(inst, history), nil
}

// Handle applies increment, decrement, undo or reset.
func (Component) Handle(ctx context.Context, inst widget.Instance, action string, _ url.Values) error {
	return widget.Update(ctx, inst, New, func(history History) (History, error) {
		switch action {
		case "increment":
			return history.Increment(), nil
		case "decrement":
			return history.Decrement(), nil
		case "undo":
			return history.Undo(), nil
		case "reset":
			return New(), nil
		default:
			return history, fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
		}
	})
}

func view(inst widget.Instance, history History) templ.Component {
	return widget.Frame(inst, "counter", func(_ context.Context, m *widget.Markup) {
		m.Raw("<h1>Counter App with Undo</h1>")
		m.Raw(`<div class="counter-wrapper"><h1 class="number">`).Text(strconv.Itoa(history.Value())).Raw("</h1>")
		m.Raw(`<div class="button-row">`)
		widget.ActionButton(m, inst, "decrement", "increment-btn", "-1", false)
		widget.ActionButton(m, inst, "undo", "undo-btn", "Undo", !history.CanUndo())
		widget.ActionButton(m, inst, "increment", "increment-btn", "+1", false)
		m.Raw("</div>")
		widget.ActionButton(m, inst, "reset", "reset-btn", "Reset", false)
		m.Raw("</div>")
	})
}

