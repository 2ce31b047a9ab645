package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/louisbranch/practice.space/internal/services/practice/platform/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called += tag
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw("1"), nil, mw("2"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("request id = %q, header = %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "given" {
		t.Fatalf("request id = %q, want given", got)
	}
}

func TestRecoverPanicLogsAndReturns500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	h := RecoverPanic(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/frontend/counter", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatalf("expected one panic log, got %v", logs.All())
	}
}

func TestAllowCORSAnswersPreflight(t *testing.T) {
	t.Parallel()

	reached := false
	h := AllowCORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
	}))
	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent || reached {
		t.Fatalf("preflight status = %d, reached = %v", rr.Code, reached)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing allow-origin header")
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusCreated, map[string]string{"ok": "yes"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Body.String(); got != `{"ok":"yes"}` {
		t.Fatalf("body = %q, want %q", got, `{"ok":"yes"}`)
	}
}

func TestWriteJSONRejectsUnencodablePayload(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusOK, map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("expected encode error")
	}
	if rr.Body.Len() != 0 || rr.Header().Get("Content-Type") != "" {
		t.Fatalf("wrote partial response: %q", rr.Body.String())
	}
}

func TestWriteErrorUsesTypedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindInvalidInput, "bad"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	rr = httptest.NewRecorder()
	WriteError(rr, errors.New("secret detail"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if got := rr.Body.String(); got != http.StatusText(http.StatusInternalServerError)+"\n" {
		t.Fatalf("body = %q, want generic text", got)
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("plain request reported as fragment request")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatal("fragment request not detected")
	}
}
