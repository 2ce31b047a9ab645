// Package loginform implements the registration form with validation.
package loginform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
)

type input struct {
	field       Field
	kind        string
	placeholder string
	label       string
}

var inputs = []input{
	{field: Username, kind: "text", placeholder: "User Name", label: "User Name"},
	{field: Email, kind: "email", placeholder: "Email Address", label: "Email"},
	{field: BirthDate, kind: "date", placeholder: "Birth Date", label: "Birth Date"},
	{field: Password, kind: "password", placeholder: "Enter Password", label: "Password"},
	{field: ConfirmPassword, kind: "password", placeholder: "Confirm Password", label: "Confirm Password"},
}

// Component adapts State to the widget runtime.
type Component struct {
	Clock widget.Clock
}

// NewComponent returns a component reading time from clock.
func NewComponent(clock widget.Clock) Component {
	return Component{Clock: clock}
}

func (c Component) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// View renders the form.
func (c Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	state, err := widget.Load(ctx, inst, New)
	if err != nil {
		return nil, err
	}
	return view(inst, state, state.Remaining(c.now())), nil
}

// Handle applies change, submit or tick.
func (c Component) Handle(ctx context.Context, inst widget.Instance, action string, form url.Values) error {
	return widget.Update(ctx, inst, New, func(state State) (State, error) {
		switch action {
		case "change":
			for _, field := range Fields {
				if values, ok := form[string(field)]; ok && len(values) > 0 {
					state = state.Change(field, values[0])
				}
			}
		case "submit":
			values := Values{}
			for _, field := range Fields {
				values[field] = form.Get(string(field))
			}
			state = state.Submit(values, c.now())
		case "tick":
			var done bool
			state, done = state.Settle(c.now())
			if done {
				inst.Notice(SuccessNotice)
			}
		default:
			return state, fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
		}
		return state, nil
	})
}

func view(inst widget.Instance, state State, remaining time.Duration) templ.Component {
	submitting := state.Status == Submitting
	return widget.Frame(inst, "login-form", func(_ context.Context, m *widget.Markup) {
		m.Raw(`<div class="form-wrapper"><form method="post" data-async`).Attr("action", inst.Action("submit")).Raw(">")
		m.Raw(`<h1 class="form-title">Register</h1>`)
		for i, in := range inputs {
			id := strconv.Itoa(i + 1)
			m.Raw(`<div><label class="form-field"`).Attr("for", inst.WidgetID+"-"+id).Raw(">").Text(in.label)
			m.Raw(`<input class="form-input"`).
				Attr("id", inst.WidgetID+"-"+id).
				Attr("type", in.kind).
				Attr("name", string(in.field)).
				Attr("placeholder", in.placeholder).
				Attr("value", state.Values[in.field]).
				Attr("data-sync", inst.Action("change")).Raw("></label>")
			if msg := state.Errors[in.field]; msg != "" {
				m.Raw(`<span class="error-message">`).Text(msg).Raw("</span>")
			}
			m.Raw("</div>")
		}
		label := "Submit"
		if submitting {
			label = "Submitting..."
		}
		m.Raw(`<button type="submit" class="form-button"`).Flag("disabled", submitting).Raw(">").Text(label).Raw("</button>")
		m.Raw("</form>")
		if submitting {
			m.Raw(`<form method="post" data-async`).Attr("action", inst.Action("tick")).
				Attr("data-delay", strconv.FormatInt(remaining.Milliseconds(), 10)).Raw(">")
			m.Raw(`<noscript><button type="submit">Continue</button></noscript></form>`)
		}
		m.Raw("</div>")
	})
}
