package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/service"
	"github.com/MKhiriev/go-forum/internal/store"
	"github.com/MKhiriev/go-forum/internal/utils"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, err := h.services.IdentityService.Register(ctx,
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("password"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			log.Warn().Err(err).Msg("email already registered")
			setNotice(w, noticeEmailTaken)
		case errors.Is(err, store.ErrAccountAlreadyExists):
			log.Warn().Err(err).Msg("username already taken")
			setNotice(w, noticeUsernameTaken)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid data provided")
			setNotice(w, noticeInvalidData)
		default:
			writeError(w, r, err, "unexpected error occurred during registration")
			return
		}

		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	log.Info().Int64("account_id", account.AccountID).Msg("account registered")
	setNotice(w, noticeRegistered)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := h.services.IdentityService.Authenticate(ctx, r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, r, err, "unexpected error occurred during login")
			return
		}

		log.Warn().Err(err).Msg("login rejected")
		setNotice(w, noticeInvalidCredential)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	log.Info().Int64("account_id", session.AccountID).Msg("account logged in")
	setSessionCookie(w, session)
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	account, _ := utils.GetAccountFromContext(r.Context())

	if err := h.services.IdentityService.EndSession(r.Context(), account); err != nil {
		writeError(w, r, err, "session termination failed")
		return
	}

	clearSessionCookie(w)
	setNotice(w, noticeLoggedOut)
	http.Redirect(w, r, "/home", http.StatusFound)
}
