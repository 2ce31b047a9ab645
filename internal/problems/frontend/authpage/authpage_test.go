package authpage

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/practice.space/internal/problems/widget/widgettest"
)

func TestConsumersRequireProvider(t *testing.T) {
	t.Parallel()

	if _, err := NewGreeting(nil); !errors.Is(err, ErrNoAuthProvider) {
		t.Fatalf("NewGreeting(nil) error = %v, want ErrNoAuthProvider", err)
	}
	if _, err := NewAuthForm(nil); !errors.Is(err, ErrNoAuthProvider) {
		t.Fatalf("NewAuthForm(nil) error = %v, want ErrNoAuthProvider", err)
	}
	var typedNil *Provider
	if _, err := NewGreeting(typedNil); !errors.Is(err, ErrNoAuthProvider) {
		t.Fatalf("NewGreeting(typed nil) error = %v, want ErrNoAuthProvider", err)
	}
}

func TestGreetingFollowsProvider(t *testing.T) {
	t.Parallel()

	provider := NewProvider(nil)
	greeting, err := NewGreeting(provider)
	if err != nil {
		t.Fatalf("NewGreeting() error = %v", err)
	}
	if got := greeting.Text(); got != "Please Log In" {
		t.Fatalf("Text() = %q", got)
	}
	provider.Login("Ada")
	if got := greeting.Text(); got != "Hi Ada" {
		t.Fatalf("Text() = %q, want Hi Ada", got)
	}
}

func TestAuthFormSubmit(t *testing.T) {
	t.Parallel()

	provider := NewProvider(nil)
	form, err := NewAuthForm(provider)
	if err != nil {
		t.Fatalf("NewAuthForm() error = %v", err)
	}
	if got := form.Submit(""); got != "" || provider.User() != nil {
		t.Fatalf("Submit(empty) signed in: %+v", provider.User())
	}
	if got := form.Submit("Ada"); got != "Ada" {
		t.Fatalf("Submit(Ada) input = %q", got)
	}
	if provider.User() == nil || provider.User().Name != "Ada" {
		t.Fatalf("User() = %+v, want Ada", provider.User())
	}
	if form.ButtonLabel() != "Logout" {
		t.Fatalf("ButtonLabel() = %q, want Logout", form.ButtonLabel())
	}
	if got := form.Submit("ignored"); got != "" || provider.User() != nil {
		t.Fatalf("Submit while signed in should log out and clear input, got %q %+v", got, provider.User())
	}
}

func TestComponentFlow(t *testing.T) {
	t.Parallel()

	h := widgettest.New(t, "frontend-auth-page", Component{})
	html := h.Render()
	if !strings.Contains(html, "<h3>Please Log In</h3>") || !strings.Contains(html, ">Login</button>") {
		t.Fatalf("initial render: %s", html)
	}
	h.Do("submit", url.Values{"name": {"Grace"}})
	html = h.Render()
	if !strings.Contains(html, "<h3>Hi Grace</h3>") || !strings.Contains(html, ">Logout</button>") {
		t.Fatalf("render after login: %s", html)
	}
	h.Do("submit", url.Values{"name": {"Grace"}})
	html = h.Render()
	if !strings.Contains(html, "<h3>Please Log In</h3>") || !strings.Contains(html, `value=""`) {
		t.Fatalf("render after logout: %s", html)
	}
}
