// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a programmatic client for the forum's HTTP
// surface.
//
// The forum answers with JSON page payloads and redirects. [ForumClient]
// turns those into plain Go values and sentinel errors: a redirect to
// /login becomes [ErrUnauthorized], a redirect back to the submitting page
// becomes [ErrRejected] carrying the server's notice, and error statuses
// are mapped by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-forum/models"
)

// ForumClient talks to a running forum server. Authenticated calls carry
// the signed session as a bearer token.
type ForumClient interface {
	// SetToken stores the signed session used by authenticated calls.
	SetToken(token string)

	// Token returns the stored signed session, or "" when logged out.
	Token() string

	Register(ctx context.Context, username, email, password string) error

	// Login authenticates and stores the returned signed session via
	// SetToken. The session is also returned so callers can persist it.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout ends the session server-side and forgets the stored token.
	Logout(ctx context.Context) error

	// Version returns the server version shown on the home page.
	Version(ctx context.Context) (string, error)

	ListDiscussions(ctx context.Context) ([]models.Discussion, error)
	CreateDiscussion(ctx context.Context, title, content string) error

	ListPosts(ctx context.Context, discussionID int64) ([]models.Post, error)

	// CreatePost returns the discussion's posts after the insert.
	CreatePost(ctx context.Context, discussionID int64, title, content string) ([]models.Post, error)
	EditPost(ctx context.Context, discussionID, postID int64, title, content string) error
	DeletePost(ctx context.Context, discussionID, postID int64) error
}
