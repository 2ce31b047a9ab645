package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
)

// ErrorPageTitle returns the page title for an error status.
func ErrorPageTitle(statusCode int, loc i18n.Localizer) string {
	if statusCode == http.StatusNotFound {
		return i18n.T(loc, "core.error.not_found")
	}
	return i18n.T(loc, "core.error.title")
}

// ErrorState renders an error body for statusCode.
func ErrorState(statusCode int, message string, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := widget.NewMarkup(w)
		m.Raw(`<div class="error-state">`)
		m.Raw("<h1>").Text(http.StatusText(statusCode)).Raw("</h1>")
		if message == "" {
			message = i18n.T(loc, "core.error.body")
		}
		m.Raw("<p>").Text(message).Raw("</p>")
		m.Raw("<a").Attr("href", routepath.Root).Raw(">").Text(i18n.T(loc, "core.back")).Raw("</a>")
		m.Raw("</div>")
		return m.Err()
	})
}
