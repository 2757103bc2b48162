package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"time"
)

// Review form CSRF protection uses a double-submit cookie: the token travels
// in a cookie and in the form's hidden field, and a POST is accepted only when
// both agree.
const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
	csrfTokenBytes = 32
	csrfTokenTTL   = 12 * time.Hour
)

// csrfToken returns the token to embed in the review form. A request without
// a usable cookie gets a fresh token set on w.
func csrfToken(w http.ResponseWriter, r *http.Request) string {
	if token := cookieToken(r); token != "" {
		return token
	}

	token := base64.RawURLEncoding.EncodeToString(randomBytes(csrfTokenBytes))
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(csrfTokenTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return token
}

// validateCSRF reports whether the submitted token matches the cookie. The
// token is read from the X-CSRF-Token header, else from the form field.
func validateCSRF(r *http.Request) bool {
	want := cookieToken(r)
	if want == "" {
		return false
	}

	got := r.Header.Get(csrfHeader)
	if got == "" {
		got = r.PostFormValue(csrfFormField)
	}

	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func cookieToken(r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// randomBytes panics if the system CSPRNG fails; there is no safe fallback.
func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("web: read random bytes: " + err.Error())
	}
	return b
}
