// Package flash provides one-time notices persisted across redirects.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
)

// CookieName is the cookie carrying the pending notice.
const CookieName = "practice_flash"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is one pending message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success builds a success notice.
func Success(message string) Notice {
	return Notice{Kind: KindSuccess, Message: message}
}

// Write stores notice for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	setCookie(w, r, base64.RawURLEncoding.EncodeToString(payload), 0, policy)
}

// ReadAndClear returns the pending notice and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	if w != nil {
		setCookie(w, r, "", -1, policy)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func setCookie(w http.ResponseWriter, r *http.Request, value string, maxAge int, policy requestmeta.SchemePolicy) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func normalize(notice Notice) (Notice, bool) {
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
