package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/practice.space/internal/platform/i18n/catalog"
	apperrors "github.com/louisbranch/practice.space/internal/services/practice/platform/errors"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"golang.org/x/text/language"
)

func localizer(t *testing.T) i18n.Localizer {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	return bundle.Printer(language.AmericanEnglish)
}

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusForbidden:           false,
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := localizer(t)
	err := apperrors.EK(apperrors.KindInvalidInput, "problems.invalid_action", "unknown action")
	if got := PublicMessage(loc, err); got != "That action is not available." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, errors.New("db exploded")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage(untyped) = %q", got)
	}
}

func TestWriteModuleErrorPlainForClientErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := apperrors.EK(apperrors.KindInvalidInput, "problems.invalid_action", "unknown action")
	WriteModuleError(rr, httptest.NewRequest(http.MethodPost, "/", nil), err, localizer(t), "en-US")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "That action is not available.") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestWriteAppErrorRendersPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound, localizer(t), "en-US")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, "Page not found.") {
		t.Fatalf("body = %s", body)
	}
}

func TestWriteAppErrorFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("HX-Request", "true")
	WriteAppError(rr, req, http.StatusBadRequest, localizer(t), "en-US")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("fragment request got full page: %s", rr.Body.String())
	}
}
