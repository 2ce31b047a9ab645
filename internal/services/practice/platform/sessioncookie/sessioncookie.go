// Package sessioncookie centralizes the anonymous practice session cookie.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
)

// Name is the canonical session cookie name.
const Name = "practice_session"

// Read returns the session id when the cookie carries a valid UUID.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}

// Ensure returns the request's session id, issuing a new cookie when the
// request has none.
func Ensure(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) string {
	if id, ok := Read(r); ok {
		return id
	}
	id := uuid.NewString()
	Write(w, r, id, policy)
	return id
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
