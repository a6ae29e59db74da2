package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/utils"
	"github.com/MKhiriev/go-forum/models"
)

// sessionCookieName is the cookie carrying the signed session string.
const sessionCookieName = "session"

// withSession resolves the caller's account from the session cookie or the
// "Authorization: Bearer" header and stores it in the request context via
// [utils.WithAccount]. The request logger is stamped with account_id in
// place, so the access log written by withLogging carries it too. Requests
// without a valid session continue anonymously; [Handler.auth] decides
// whether that is acceptable.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signed, err := sessionFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		account, err := h.services.IdentityService.ValidateSession(ctx, signed)
		if err != nil {
			log.Debug().Err(err).Msg("session rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("account_id", account.AccountID)
		})

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(ctx, account)))
	})
}

// auth lets only requests with a resolved account through and redirects
// everyone else to the login page.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetAccountFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("login required")
			setNotice(w, noticeLoginRequired)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionFromRequest prefers the session cookie over the bearer header.
func sessionFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoSession
	}

	return utils.ParseBearerToken(header)
}

func setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
