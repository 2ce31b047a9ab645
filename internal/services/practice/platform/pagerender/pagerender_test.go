package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/flash"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
)

func TestWritePageFullLayout(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/frontend/counter", nil)
	err := WritePage(rr, req, requestmeta.SchemePolicy{}, Page{
		Title:    "Counter",
		Fragment: templ.Raw("<p>body</p>"),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, "<p>body</p>") {
		t.Fatalf("body = %s", body)
	}
}

func TestWritePageFragmentOnly(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/frontend/counter/actions/increment", nil)
	req.Header.Set("HX-Request", "true")
	if err := WritePage(rr, req, requestmeta.SchemePolicy{}, Page{Fragment: templ.Raw("<p>body</p>")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if got := rr.Body.String(); got != "<p>body</p>" {
		t.Fatalf("body = %q, want fragment only", got)
	}
}

func TestWritePageConsumesFlash(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flash.Write(seed, httptest.NewRequest(http.MethodPost, "/", nil), flash.Success("Registration successfull!"), requestmeta.SchemePolicy{})

	req := httptest.NewRequest(http.MethodGet, "/frontend/login-form", nil)
	for _, cookie := range seed.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, requestmeta.SchemePolicy{}, Page{StatusCode: http.StatusOK}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), "Registration successfull!") {
		t.Fatalf("body missing notice: %s", rr.Body.String())
	}
	cleared := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie was not cleared")
	}
}

func TestWritePageRenderErrorWritesNothing(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), requestmeta.SchemePolicy{}, Page{Fragment: failing})
	if !errors.Is(err, boom) {
		t.Fatalf("WritePage() error = %v, want boom", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}
