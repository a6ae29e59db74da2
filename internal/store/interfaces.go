// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-forum/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists registered accounts and their session tokens.
type AccountRepository interface {
	// CreateAccount inserts a new account and returns it with AccountID set.
	// A UNIQUE violation on email yields [ErrEmailAlreadyExists], any other
	// UNIQUE violation yields [ErrAccountAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	FindAccountBySessionToken(ctx context.Context, token string) (models.Account, error)
	// SetSessionToken overwrites the stored token. The last writer wins.
	SetSessionToken(ctx context.Context, accountID int64, token string) error
	// ClearSessionToken sets the stored token to NULL.
	ClearSessionToken(ctx context.Context, accountID int64) error
}

// DiscussionRepository persists discussions. Discussions are never updated
// or deleted.
type DiscussionRepository interface {
	CreateDiscussion(ctx context.Context, discussion models.Discussion) (models.Discussion, error)
	// ListDiscussions returns every discussion in insertion order.
	ListDiscussions(ctx context.Context) ([]models.Discussion, error)
	GetDiscussion(ctx context.Context, discussionID int64) (models.Discussion, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// ListPostsByDiscussion returns the posts of a discussion ordered by
	// creation time, ties broken by id.
	ListPostsByDiscussion(ctx context.Context, discussionID int64) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	// UpdatePost overwrites title and content only.
	UpdatePost(ctx context.Context, update models.PostUpdate) error
	DeletePost(ctx context.Context, postID int64) error
}

// ErrorClassificator maps a driver-specific error to the constraint it
// violated. The returned string is the constraint name or driver message and
// is used to tell UNIQUE columns apart.
type ErrorClassificator interface {
	Classify(err error) (Violation, string)
}
