// Package i18n resolves request languages against the message catalog.
package i18n

import (
	"net/http"
	"strings"

	"github.com/louisbranch/practice.space/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangCookieName persists an explicit language choice.
	LangCookieName = "practice_lang"
	// LangParam selects a language for one request and persists it.
	LangParam = "lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Resolver maps requests to printers for the loaded bundle.
type Resolver struct {
	bundle *catalog.Bundle
}

// NewResolver builds a resolver over bundle.
func NewResolver(bundle *catalog.Bundle) *Resolver {
	return &Resolver{bundle: bundle}
}

// ResolveTag picks the request language: query parameter first, then the
// language cookie, then Accept-Language.
func (res *Resolver) ResolveTag(r *http.Request) language.Tag {
	if res == nil || res.bundle == nil || r == nil {
		return language.Make(catalog.BaseLocale)
	}
	if r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
			return res.bundle.Match(value)
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if value := strings.TrimSpace(cookie.Value); value != "" {
			return res.bundle.Match(value)
		}
	}
	return res.bundle.Match(r.Header.Get("Accept-Language"))
}

// Resolve returns a localizer and language string for the request. An
// explicit query choice is stored in the language cookie.
func (res *Resolver) Resolve(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag := res.ResolveTag(r)
	if w != nil && r != nil && r.URL != nil && strings.TrimSpace(r.URL.Query().Get(LangParam)) != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     LangCookieName,
			Value:    tag.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   365 * 24 * 60 * 60,
		})
	}
	if res == nil || res.bundle == nil {
		return message.NewPrinter(tag), tag.String()
	}
	return res.bundle.Printer(tag), tag.String()
}

// T translates key, falling back to the key itself when loc is nil.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}
