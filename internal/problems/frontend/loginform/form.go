package loginform

import (
	"time"
)

// SubmitDelay is how long a valid submission stays in the submitting status.
const SubmitDelay = time.Second

// SuccessNotice is raised once a submission completes.
const SuccessNotice = "Registration successfull!"

// Field names a form input.
type Field string

const (
	Username        Field = "username"
	Email           Field = "email"
	BirthDate       Field = "birthDate"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
)

// Fields lists the inputs in display order.
var Fields = []Field{Username, Email, BirthDate, Password, ConfirmPassword}

// Values maps each field to its text. The same shape holds error messages.
type Values map[Field]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Validate returns one message per invalid field.
func Validate(v Values) Values {
	errs := Values{}

	switch username := v[Username]; {
	case username == "":
		errs[Username] = "Username is mandatory"
	case len(username) < 3:
		errs[Username] = "Username must be atleast 3 characters long."
	}
	if v[Email] == "" {
		errs[Email] = "Email is mandatory."
	}
	if v[BirthDate] == "" {
		errs[BirthDate] = "Date of Birth is mandatory."
	}
	switch password := v[Password]; {
	case password == "":
		errs[Password] = "Password is mandatory"
	case len(password) < 8:
		errs[Password] = "Password must be 8 characters long."
	}
	switch confirm := v[ConfirmPassword]; {
	case confirm == "":
		errs[ConfirmPassword] = "Password is mandatory"
	case v[Password] != "" && confirm != v[Password]:
		errs[ConfirmPassword] = "Passwords don't match."
	}
	return errs
}

// Status is the submission status.
type Status string

const (
	Idle       Status = "idle"
	Submitting Status = "submitting"
)

// State is the form state.
type State struct {
	Values      Values    `json:"values"`
	Errors      Values    `json:"errors"`
	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at,omitzero"`
}

// New returns an empty idle form.
func New() State {
	return State{Values: Values{}, Errors: Values{}, Status: Idle}
}

// Change sets field and clears its error.
func (s State) Change(field Field, value string) State {
	s.Values = s.Values.clone()
	s.Errors = s.Errors.clone()
	s.Values[field] = value
	delete(s.Errors, field)
	return s
}

// Submit validates values. Invalid input records errors and leaves the status
// alone; valid input clears errors and starts submitting at now. Submissions
// while already submitting are ignored.
func (s State) Submit(values Values, now time.Time) State {
	if s.Status == Submitting {
		return s
	}
	s.Values = values.clone()
	s.Errors = Validate(values)
	if len(s.Errors) > 0 {
		return s
	}
	s.Status = Submitting
	s.SubmittedAt = now
	return s
}

// Remaining returns how long the current submission still runs.
func (s State) Remaining(now time.Time) time.Duration {
	if s.Status != Submitting {
		return 0
	}
	return max(0, s.SubmittedAt.Add(SubmitDelay).Sub(now))
}

// Settle returns to idle once the submit delay has elapsed. The bool reports
// whether the submission completed on this call.
func (s State) Settle(now time.Time) (State, bool) {
	if s.Status != Submitting || s.Remaining(now) > 0 {
		return s, false
	}
	s.Status = Idle
	s.SubmittedAt = time.Time{}
	return s, true
}
