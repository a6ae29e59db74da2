package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-forum/internal/logger"
	"github.com/MKhiriev/go-forum/internal/service"
	"github.com/MKhiriev/go-forum/internal/store"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// maps to the first listed. Service errors come before the store errors they
// may wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidPathID, http.StatusNotFound},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrDuplicateEmail, http.StatusConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrAccountAlreadyExists, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrDiscussionNotFound, http.StatusNotFound},
	{store.ErrPostNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status it maps to. Server-side
// failures never leak their message to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, http.StatusText(status), status)
}
