// Package templates renders the practice app shell and pages.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
)

// Notice is a one-shot banner shown above page content.
type Notice struct {
	Kind    string
	Message string
}

// LayoutData carries the shell inputs for one full-page render.
type LayoutData struct {
	Title  string
	Lang   string
	Notice *Notice
	Loc    i18n.Localizer
}

// Layout renders the document shell around the context children.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := data.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := i18n.T(data.Loc, "core.title")
		if data.Title != "" {
			title = data.Title + " | " + title
		}
		m := widget.NewMarkup(w)
		m.Raw("<!DOCTYPE html><html").Attr("lang", lang).Raw(">")
		m.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw("<title>").Text(title).Raw("</title>")
		m.Raw(`<link rel="stylesheet"`).Attr("href", routepath.Static("styles.css")).Raw(">")
		m.Raw(`<script defer`).Attr("src", routepath.Static("app.js")).Raw("></script>")
		m.Raw("</head><body>")
		m.Raw(`<div id="notices" aria-live="polite">`)
		m.Component(ctx, NoticeBanner(data.Notice))
		m.Raw(`</div><main id="main">`)
		m.Component(ctx, templ.GetChildren(ctx))
		m.Raw("</main></body></html>")
		return m.Err()
	})
}

// NoticeBanner renders notice, or nothing when notice is nil.
func NoticeBanner(notice *Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if notice == nil || notice.Message == "" {
			return nil
		}
		kind := notice.Kind
		if kind == "" {
			kind = "info"
		}
		m := widget.NewMarkup(w)
		m.Raw(`<div role="status"`).Attr("class", "notice notice-"+kind).Raw(">").Text(notice.Message).Raw("</div>")
		return m.Err()
	})
}
