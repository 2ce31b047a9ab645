package dropdown

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/problems/widget/widgettest"
)

func TestStateTransitions(t *testing.T) {
	t.Parallel()

	var s State
	if s.Label() != Placeholder {
		t.Fatalf("Label() = %q, want %q", s.Label(), Placeholder)
	}
	s = s.Toggle()
	if !s.Open {
		t.Fatal("Toggle() did not open")
	}
	s = s.Select("C")
	if s.Open || s.Label() != "Option C" {
		t.Fatalf("Select(C) = %+v", s)
	}
	if got := s.Outside(); got != s {
		t.Fatalf("Outside() on closed = %+v, want unchanged", got)
	}
	if got := s.Toggle().Outside(); got.Open {
		t.Fatal("Outside() did not close open panel")
	}
}

func TestComponentFlow(t *testing.T) {
	t.Parallel()

	h := widgettest.New(t, "frontend-dropdown", Component{})
	html := h.Render()
	if !strings.Contains(html, Placeholder) || strings.Contains(html, "Option A") {
		t.Fatalf("initial render: %s", html)
	}

	h.Do("toggle", nil)
	html = h.Render()
	if strings.Count(html, `class="panel-option"`) != len(Options) {
		t.Fatalf("open render should list every option: %s", html)
	}
	if !strings.Contains(html, `data-outside="`) {
		t.Fatalf("open render should register outside click target: %s", html)
	}

	h.Do("outside", nil)
	if html := h.Render(); strings.Contains(html, "panel-option") {
		t.Fatalf("outside click should close panel: %s", html)
	}

	h.Do("toggle", nil)
	h.Do("select", url.Values{"option": {"B"}})
	html = h.Render()
	if !strings.Contains(html, ">Option B</button>") || strings.Contains(html, "panel-option") {
		t.Fatalf("render after select: %s", html)
	}
}

func TestComponentRejectsUnknownOption(t *testing.T) {
	t.Parallel()

	h := widgettest.New(t, "frontend-dropdown", Component{})
	err := Component{}.Handle(t.Context(), h.Instance, "select", url.Values{"option": {"Z"}})
	if !errors.Is(err, widget.ErrUnknownAction) {
		t.Fatalf("Handle() error = %v, want ErrUnknownAction", err)
	}
}
