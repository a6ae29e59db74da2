// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single reply within a Discussion.
type Post struct {
	// PostID is the unique identifier of the post.
	PostID int64 `json:"id"`

	// Title and Content are the only mutable fields of a post.
	Title   string `json:"title"`
	Content string `json:"content"`

	// CreatedAt is assigned on creation and is not touched by edits.
	CreatedAt time.Time `json:"date_posted"`

	// AccountID references the authoring Account.
	AccountID int64 `json:"user_id"`

	// DiscussionID references the Discussion the post belongs to.
	DiscussionID int64 `json:"discussion_id"`

	// Writer is the author's username captured at creation time. It is not
	// kept in sync with later username changes.
	Writer string `json:"writer"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes an edit of an existing post.
type PostUpdate struct {
	PostID  int64
	Title   string
	Content string
}
