package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRejected is returned when the server redirects a form back to its
	// own page. The wrapped message is the server's notice.
	ErrRejected = errors.New("request rejected")

	// ErrUnexpectedResponse is returned for a redirect to an unexpected
	// location.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
