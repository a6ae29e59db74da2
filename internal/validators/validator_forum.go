package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-forum/models"
)

// ForumValidator checks the non-empty and reference constraints of the
// forum entities before they reach the store.
type ForumValidator struct {
}

func NewForumValidator() Validator {
	return &ForumValidator{}
}

func (v *ForumValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)

	case models.Discussion:
		return v.validateDiscussion(ctx, value, fields...)
	case *models.Discussion:
		return v.validateDiscussion(ctx, *value, fields...)

	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(ctx, value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateAccount checks a registration request. The password is checked in
// plaintext form, before hashing.
func (v *ForumValidator) validateAccount(ctx context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(account.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if isBlank(account.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if account.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validateDiscussion(ctx context.Context, discussion models.Discussion, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(discussion.Title) {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validatePost(ctx context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldAccountID, FieldDiscussionID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(post.Title) {
				return ErrEmptyTitle
			}
		case FieldAccountID:
			if post.AccountID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldDiscussionID:
			if post.DiscussionID <= 0 {
				return ErrInvalidDiscussion
			}
		case FieldPostID:
			if post.PostID <= 0 {
				return ErrInvalidPostID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ForumValidator) validatePostUpdate(ctx context.Context, update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if update.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldTitle:
			if isBlank(update.Title) {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
