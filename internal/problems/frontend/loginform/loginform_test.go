package loginform

import (
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/problems/widget/widgettest"
)

func validValues() Values {
	return Values{
		Username:        "ada",
		Email:           "ada@example.com",
		BirthDate:       "1815-12-10",
		Password:        "analytical",
		ConfirmPassword: "analytical",
	}
}

func TestValidateAllEmpty(t *testing.T) {
	t.Parallel()

	want := Values{
		Username:        "Username is mandatory",
		Email:           "Email is mandatory.",
		BirthDate:       "Date of Birth is mandatory.",
		Password:        "Password is mandatory",
		ConfirmPassword: "Password is mandatory",
	}
	if diff := cmp.Diff(want, Validate(Values{})); diff != "" {
		t.Fatalf("Validate(empty) (-want +got):\n%s", diff)
	}
}

func TestValidateLengthAndMatch(t *testing.T) {
	t.Parallel()

	values := validValues()
	values[Username] = "ad"
	values[Password] = "short"
	values[ConfirmPassword] = "different"
	want := Values{
		Username:        "Username must be atleast 3 characters long.",
		Password:        "Password must be 8 characters long.",
		ConfirmPassword: "Passwords don't match.",
	}
	if diff := cmp.Diff(want, Validate(values)); diff != "" {
		t.Fatalf("Validate() (-want +got):\n%s", diff)
	}
	if errs := Validate(validValues()); len(errs) != 0 {
		t.Fatalf("Validate(valid) = %v, want none", errs)
	}
}

func TestSubmitInvalidHasNoSideEffect(t *testing.T) {
	t.Parallel()

	now := time.Unix(100, 0)
	state := New().Submit(Values{}, now)
	if state.Status != Idle {
		t.Fatalf("Status = %q, want idle", state.Status)
	}
	if len(state.Errors) != 5 {
		t.Fatalf("len(Errors) = %d, want 5", len(state.Errors))
	}
}

func TestChangeClearsFieldError(t *testing.T) {
	t.Parallel()

	state := New().Submit(Values{}, time.Unix(0, 0))
	state = state.Change(Email, "a@b.c")
	if _, ok := state.Errors[Email]; ok {
		t.Fatal("Change() kept the email error")
	}
	if len(state.Errors) != 4 {
		t.Fatalf("len(Errors) = %d, want 4", len(state.Errors))
	}
}

func TestSubmitValidSettlesAfterDelay(t *testing.T) {
	t.Parallel()

	start := time.Unix(100, 0)
	state := New().Submit(validValues(), start)
	if state.Status != Submitting || len(state.Errors) != 0 {
		t.Fatalf("state after valid submit = %+v", state)
	}
	if again := state.Submit(Values{}, start); again.Status != Submitting || len(again.Errors) != 0 {
		t.Fatalf("resubmit while submitting changed state: %+v", again)
	}

	early, done := state.Settle(start.Add(500 * time.Millisecond))
	if done || early.Status != Submitting {
		t.Fatalf("Settle() before delay = %+v, %v", early, done)
	}
	settled, done := state.Settle(start.Add(SubmitDelay))
	if !done || settled.Status != Idle {
		t.Fatalf("Settle() after delay = %+v, %v", settled, done)
	}
	if _, again := settled.Settle(start.Add(2 * SubmitDelay)); again {
		t.Fatal("Settle() reported completion twice")
	}
}

func TestComponentFlowWithClock(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	h := widgettest.New(t, "frontend-login-form", NewComponent(func() time.Time { return now }))

	h.Do("submit", url.Values{})
	html := h.Render()
	if strings.Count(html, `class="error-message"`) != 5 {
		t.Fatalf("expected five errors: %s", html)
	}

	h.Do("change", url.Values{"username": {"ada"}})
	if html := h.Render(); strings.Count(html, `class="error-message"`) != 4 {
		t.Fatalf("expected change to clear one error: %s", html)
	}

	form := url.Values{}
	for field, value := range validValues() {
		form.Set(string(field), value)
	}
	h.Do("submit", form)
	html = h.Render()
	if !strings.Contains(html, "Submitting...") || !strings.Contains(html, `data-delay="1000"`) {
		t.Fatalf("expected submitting render: %s", html)
	}

	h.Do("tick", nil)
	if len(h.Notices()) != 0 {
		t.Fatalf("notice raised before delay: %v", h.Notices())
	}
	now = now.Add(SubmitDelay)
	h.Do("tick", nil)
	if diff := cmp.Diff([]string{SuccessNotice}, h.Notices()); diff != "" {
		t.Fatalf("notices (-want +got):\n%s", diff)
	}
	if html := h.Render(); !strings.Contains(html, ">Submit</button>") {
		t.Fatalf("expected idle render: %s", html)
	}
}

func TestChangeRacingSubmitKeepsSubmitting(t *testing.T) {
	t.Parallel()

	now := time.Unix(2000, 0)
	h := widgettest.New(t, "frontend-login-form", NewComponent(func() time.Time { return now }))
	form := url.Values{}
	for field, value := range validValues() {
		form.Set(string(field), value)
	}

	for range 20 {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := h.Component.Handle(t.Context(), h.Instance, "change", url.Values{"username": {"ada"}}); err != nil {
				t.Errorf("Handle(change) error = %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := h.Component.Handle(t.Context(), h.Instance, "submit", form); err != nil {
				t.Errorf("Handle(submit) error = %v", err)
			}
		}()
		wg.Wait()

		state, err := widget.Load(t.Context(), h.Instance, New)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if state.Status != Submitting {
			t.Fatalf("Status = %q, want %q", state.Status, Submitting)
		}
		h.Unmount()
	}
}
