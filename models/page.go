// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is the payload written in place of a rendered HTML page.
type Page struct {
	// Name identifies the page (e.g. "login", "posts").
	Name string `json:"page"`

	// Notice is a one-shot user-visible message (flash), if any.
	Notice string `json:"notice,omitempty"`

	// Account is the logged-in account viewing the page, if any.
	Account *Account `json:"account,omitempty"`

	// Data is page-specific content.
	Data any `json:"data,omitempty"`
}

// PostsPage is the data of the "posts" page.
type PostsPage struct {
	DiscussionID int64  `json:"discussion_id"`
	Posts        []Post `json:"posts"`
}

// EditPage is the data of the "edit" page.
type EditPage struct {
	DiscussionID int64 `json:"discussion_id"`
	Post         Post  `json:"post"`
}

// DiscussionPage is the data of the "new_post" page.
type DiscussionPage struct {
	DiscussionID int64 `json:"discussion_id"`
}

// HomePage is the data of the "home" page.
type HomePage struct {
	Version string `json:"version"`
}
