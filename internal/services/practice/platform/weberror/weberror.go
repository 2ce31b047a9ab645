// Package weberror renders app-shell error responses.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/practice.space/internal/services/practice/platform/errors"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/httpx"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc i18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page, or the bare error state for
// fragment requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, loc i18n.Localizer, lang string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	message := ""
	if statusCode == http.StatusNotFound {
		message = i18n.T(loc, "core.error.not_found")
	}
	fragment := templates.ErrorState(statusCode, message, loc)
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	var err error
	if httpx.IsHTMXRequest(r) {
		err = fragment.Render(ctx, &buf)
	} else {
		layout := templates.Layout(templates.LayoutData{
			Title: templates.ErrorPageTitle(statusCode, loc),
			Lang:  lang,
			Loc:   loc,
		})
		err = layout.Render(templ.WithChildren(ctx, fragment), &buf)
	}
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	_ = httpx.WriteHTML(w, statusCode, buf.Bytes())
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, loc i18n.Localizer, lang string) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, loc, lang)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
