package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forum/internal/validators"
	"github.com/MKhiriev/go-forum/models"
)

// IdentityValidationService rejects malformed registrations before they
// reach the wrapped IdentityService.
type IdentityValidationService struct {
	IdentityService
	validator validators.Validator
}

func NewIdentityValidationService() IdentityServiceWrapper {
	return &IdentityValidationService{
		validator: validators.NewForumValidator(),
	}
}

func (v *IdentityValidationService) Register(ctx context.Context, username, email, password string) (models.Account, error) {
	account := models.Account{Username: username, Email: email, Password: password}
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.IdentityService.Register(ctx, username, email, password)
}

func (v *IdentityValidationService) Wrap(inner IdentityService) IdentityService {
	v.IdentityService = inner
	return v
}

type DiscussionValidationService struct {
	DiscussionService
	validator validators.Validator
}

func NewDiscussionValidationService() DiscussionServiceWrapper {
	return &DiscussionValidationService{
		validator: validators.NewForumValidator(),
	}
}

func (v *DiscussionValidationService) CreateDiscussion(ctx context.Context, title, content string) (models.Discussion, error) {
	if err := v.validator.Validate(ctx, models.Discussion{Title: title, Content: content}); err != nil {
		return models.Discussion{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.DiscussionService.CreateDiscussion(ctx, title, content)
}

func (v *DiscussionValidationService) Wrap(inner DiscussionService) DiscussionService {
	v.DiscussionService = inner
	return v
}

type PostValidationService struct {
	PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewForumValidator(),
	}
}

// CreatePost reports a missing author before any field problem.
func (v *PostValidationService) CreatePost(ctx context.Context, discussionID int64, title, content string, author models.Account) (models.Post, error) {
	if author.AccountID == 0 {
		return models.Post{}, ErrUnauthenticated
	}

	post := models.Post{Title: title, Content: content, AccountID: author.AccountID, DiscussionID: discussionID}
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.PostService.CreatePost(ctx, discussionID, title, content, author)
}

func (v *PostValidationService) EditPost(ctx context.Context, postID int64, title, content string, editor models.Account) (models.Post, error) {
	if editor.AccountID == 0 {
		return models.Post{}, ErrUnauthenticated
	}

	if err := v.validator.Validate(ctx, models.PostUpdate{PostID: postID, Title: title}); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.PostService.EditPost(ctx, postID, title, content, editor)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.PostService = inner
	return v
}
