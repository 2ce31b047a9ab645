package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
)

// ProblemLink is one home list row.
type ProblemLink struct {
	ID    string
	Title string
	Path  string
}

// Home renders the problem index.
func Home(links []ProblemLink, loc i18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := widget.NewMarkup(w)
		m.Raw(`<div class="home">`)
		m.Raw("<h1>").Text(i18n.T(loc, "problems.heading")).Raw("</h1>")
		m.Raw("<h2>").Text(i18n.T(loc, "problems.frontend")).Raw("</h2>")
		if len(links) == 0 {
			m.Raw("<p>").Text(i18n.T(loc, "problems.empty")).Raw("</p>")
		} else {
			m.Raw("<ul>")
			for _, link := range links {
				m.Raw("<li").Attr("id", link.ID).Raw("><a").Attr("href", link.Path).Raw(">").Text(link.Title).Raw("</a></li>")
			}
			m.Raw("</ul>")
		}
		m.Raw("</div>")
		return m.Err()
	})
}
