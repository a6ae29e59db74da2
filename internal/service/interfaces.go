package service

import (
	"context"

	"github.com/MKhiriev/go-forum/models"
)

// IdentityService registers accounts and manages their sessions.
type IdentityService interface {
	Register(ctx context.Context, username, email, password string) (models.Account, error)
	Authenticate(ctx context.Context, username, password string) (models.Session, error)
	ValidateSession(ctx context.Context, signed string) (models.Account, error)
	EndSession(ctx context.Context, account models.Account) error
}

type DiscussionService interface {
	CreateDiscussion(ctx context.Context, title, content string) (models.Discussion, error)
	ListDiscussions(ctx context.Context) ([]models.Discussion, error)
	GetDiscussion(ctx context.Context, discussionID int64) (models.Discussion, error)
}

type PostService interface {
	CreatePost(ctx context.Context, discussionID int64, title, content string, author models.Account) (models.Post, error)
	ListPosts(ctx context.Context, discussionID int64) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	EditPost(ctx context.Context, postID int64, title, content string, editor models.Account) (models.Post, error)
	DeletePost(ctx context.Context, postID int64, editor models.Account) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenGenerator produces unguessable opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// IdentityServiceWrapper, DiscussionServiceWrapper and PostServiceWrapper
// define middleware composition for the services. Implementations wrap an
// existing service to add behavior such as validating.
type IdentityServiceWrapper interface {
	Wrap(IdentityService) IdentityService
}

type DiscussionServiceWrapper interface {
	Wrap(DiscussionService) DiscussionService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
