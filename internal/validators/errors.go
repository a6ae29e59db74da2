package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidAccountID  = errors.New("invalid account ID")
	ErrInvalidDiscussion = errors.New("invalid discussion ID")
	ErrInvalidPostID     = errors.New("invalid post ID")
)
