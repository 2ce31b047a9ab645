package widget

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Markup writes HTML fragments for hand-built views and keeps the first
// write error.
type Markup struct {
	w   io.Writer
	err error
}

// NewMarkup wraps w.
func NewMarkup(w io.Writer) *Markup {
	return &Markup{w: w}
}

// Raw writes s unescaped.
func (m *Markup) Raw(s string) *Markup {
	if m.err != nil {
		return m
	}
	_, m.err = io.WriteString(m.w, s)
	return m
}

// Text writes s with HTML escaping.
func (m *Markup) Text(s string) *Markup {
	return m.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (m *Markup) Attr(name, value string) *Markup {
	return m.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Flag writes a bare boolean attribute when on is true.
func (m *Markup) Flag(name string, on bool) *Markup {
	if !on {
		return m
	}
	return m.Raw(" " + name)
}

// Component renders c in place.
func (m *Markup) Component(ctx context.Context, c templ.Component) *Markup {
	if m.err != nil || c == nil {
		return m
	}
	m.err = c.Render(ctx, m.w)
	return m
}

// Err returns the first write error.
func (m *Markup) Err() error {
	return m.err
}

// Frame wraps body in the standard widget container. The container carries
// the instance id used by the client script to swap fragments in place.
func Frame(inst Instance, class string, body func(ctx context.Context, m *Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := NewMarkup(w)
		m.Raw(`<section class="widget`)
		if class != "" {
			m.Raw(" " + templ.EscapeString(class))
		}
		m.Raw(`"`).Attr("data-widget", inst.WidgetID).Raw(">")
		body(ctx, m)
		m.Raw("</section>")
		return m.Err()
	})
}

// ActionButton writes a single-button form posting action.
func ActionButton(m *Markup, inst Instance, action string, class string, label string, disabled bool, hidden ...[2]string) {
	m.Raw(`<form method="post" class="inline" data-async`).Attr("action", inst.Action(action)).Raw(">")
	for _, field := range hidden {
		m.Raw(`<input type="hidden"`).Attr("name", field[0]).Attr("value", field[1]).Raw(">")
	}
	m.Raw(`<button type="submit"`)
	if class != "" {
		m.Attr("class", class)
	}
	m.Flag("disabled", disabled).Raw(">").Text(label).Raw("</button></form>")
}
