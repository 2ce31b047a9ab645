package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
)

// ProblemView describes one mounted problem page.
type ProblemView struct {
	Title    string
	ResetURL string
	Body     templ.Component
}

// ProblemPage renders the problem toolbar followed by the widget body.
func ProblemPage(view ProblemView, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := widget.NewMarkup(w)
		m.Raw(`<nav class="problem-bar"><a`).Attr("href", routepath.Root).Raw(">").Text(i18n.T(loc, "core.back")).Raw("</a>")
		m.Raw(`<span class="problem-title">`).Text(view.Title).Raw("</span>")
		if view.ResetURL != "" {
			m.Raw(`<form method="post" class="inline"`).Attr("action", view.ResetURL).Raw(">")
			m.Raw(`<button type="submit" class="reset">`).Text(i18n.T(loc, "core.reset")).Raw("</button></form>")
		}
		m.Raw("</nav>")
		m.Component(ctx, view.Body)
		return m.Err()
	})
}

// NotFound renders the unknown-problem message.
func NotFound(loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := widget.NewMarkup(w)
		m.Raw("<p>").Text(i18n.T(loc, "problems.not_found")).Raw("</p>")
		return m.Err()
	})
}

// WidgetError renders the inline message shown when a widget fails to render.
func WidgetError(widgetID string, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := widget.NewMarkup(w)
		m.Raw(`<section class="widget widget-error"`).Attr("data-widget", widgetID).Raw(`><p role="alert">`)
		m.Text(i18n.T(loc, "problems.widget_error")).Raw("</p></section>")
		return m.Err()
	})
}
