package http

import (
	"net/http"
	"net/url"
	"time"
)

// noticeCookieName is the cookie holding a one-shot message shown on the
// next rendered page.
const noticeCookieName = "notice"

const (
	noticeEmailTaken        = "Email already registered"
	noticeUsernameTaken     = "Username already taken"
	noticeInvalidData       = "Username, email and password are required"
	noticeRegistered        = "Account created, please log in"
	noticeInvalidCredential = "Invalid username or password"
	noticeLoginRequired     = "Please log in to access this page"
	noticeLoggedOut         = "Logged out"
)

func setNotice(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popNotice returns the pending notice, if any, and expires its cookie.
func popNotice(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(noticeCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:    noticeCookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
