// Package widgettest provides helpers for exercising widgets in tests.
package widgettest

import (
	"bytes"
	"context"
	"net/url"
	"sync"
	"testing"

	"github.com/louisbranch/practice.space/internal/problems/widget"
)

// Harness mounts one component against an in-memory store.
type Harness struct {
	T         testing.TB
	Component widget.Component
	Instance  widget.Instance

	mu      sync.Mutex
	notices []string
}

// New returns a harness for component mounted as widgetID.
func New(t testing.TB, widgetID string, component widget.Component) *Harness {
	t.Helper()
	h := &Harness{T: t, Component: component}
	h.Instance = widget.Instance{
		WidgetID:  widgetID,
		SessionID: "test-session",
		ActionURL: func(action string) string { return "/test/" + widgetID + "/actions/" + action },
		Store:     widget.NewMemoryStore(),
		Notify: func(message string) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.notices = append(h.notices, message)
		},
	}
	return h
}

// Do applies action and fails the test on error.
func (h *Harness) Do(action string, form url.Values) {
	h.T.Helper()
	if err := h.Component.Handle(context.Background(), h.Instance, action, form); err != nil {
		h.T.Fatalf("Handle(%q) error = %v", action, err)
	}
}

// Render returns the current view as HTML.
func (h *Harness) Render() string {
	h.T.Helper()
	view, err := h.Component.View(context.Background(), h.Instance)
	if err != nil {
		h.T.Fatalf("View() error = %v", err)
	}
	var buf bytes.Buffer
	if err := view.Render(context.Background(), &buf); err != nil {
		h.T.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

// Notices returns every notice published so far.
func (h *Harness) Notices() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.notices...)
}

// Unmount drops the instance state.
func (h *Harness) Unmount() {
	h.T.Helper()
	if err := widget.Unmount(context.Background(), h.Instance); err != nil {
		h.T.Fatalf("Unmount() error = %v", err)
	}
}
