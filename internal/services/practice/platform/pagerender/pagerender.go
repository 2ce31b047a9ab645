// Package pagerender centralizes page rendering for full-page and fragment
// requests.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/flash"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/httpx"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
	"github.com/louisbranch/practice.space/internal/services/practice/templates"
)

// Page describes one page response.
type Page struct {
	Title      string
	StatusCode int
	Lang       string
	Loc        i18n.Localizer
	Fragment   templ.Component
}

// WritePage renders page inside the layout, or the bare fragment for
// fragment requests. Nothing is written when rendering fails.
func WritePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.Bytes())
	}

	layout := templates.Layout(templates.LayoutData{
		Title:  page.Title,
		Lang:   page.Lang,
		Notice: resolveNotice(w, r, policy),
		Loc:    page.Loc,
	})
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

func resolveNotice(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) *templates.Notice {
	notice, ok := flash.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	return &templates.Notice{Kind: string(notice.Kind), Message: notice.Message}
}
