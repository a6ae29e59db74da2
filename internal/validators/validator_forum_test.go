// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forum/models"
)

// ---------------------------------------------------------------------------
// TestNewForumValidator
// ---------------------------------------------------------------------------

func TestNewForumValidator(t *testing.T) {
	v := NewForumValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewForumValidator()
	ctx := context.Background()

	account := models.Account{Username: "alice", Email: "a@x.io", Password: "pw"}
	discussion := models.Discussion{Title: "T1"}
	post := models.Post{Title: "P1", AccountID: 1, DiscussionID: 1}
	update := models.PostUpdate{PostID: 1, Title: "P1"}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "account value", obj: account},
		{name: "account pointer", obj: &account},
		{name: "discussion value", obj: discussion},
		{name: "discussion pointer", obj: &discussion},
		{name: "post value", obj: post},
		{name: "post pointer", obj: &post},
		{name: "post update value", obj: update},
		{name: "post update pointer", obj: &update},
		{name: "unsupported", obj: "string", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Account
// ---------------------------------------------------------------------------

func TestValidate_Account(t *testing.T) {
	v := NewForumValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		account models.Account
		fields  []string
		wantErr error
	}{
		{name: "empty username", account: models.Account{Email: "a@x.io", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "blank username", account: models.Account{Username: "   ", Email: "a@x.io", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "empty email", account: models.Account{Username: "alice", Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "empty password", account: models.Account{Username: "alice", Email: "a@x.io"}, wantErr: ErrEmptyPassword},
		{name: "whitespace password is allowed", account: models.Account{Username: "alice", Email: "a@x.io", Password: " "}},
		{name: "scoped to username", account: models.Account{Username: "alice"}, fields: []string{FieldUsername}},
		{name: "unknown field", account: models.Account{}, fields: []string{FieldTitle}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.account, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Discussion
// ---------------------------------------------------------------------------

func TestValidate_Discussion(t *testing.T) {
	v := NewForumValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Discussion{Title: "T1"}))
	assert.NoError(t, v.Validate(ctx, models.Discussion{Title: "T1", Content: ""}), "content may be empty")
	assert.ErrorIs(t, v.Validate(ctx, models.Discussion{}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.Discussion{Title: "\t"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.Discussion{Title: "T"}, FieldEmail), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_Post
// ---------------------------------------------------------------------------

func TestValidate_Post(t *testing.T) {
	v := NewForumValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		post    models.Post
		fields  []string
		wantErr error
	}{
		{name: "valid", post: models.Post{Title: "P", AccountID: 1, DiscussionID: 2}},
		{name: "empty title", post: models.Post{AccountID: 1, DiscussionID: 2}, wantErr: ErrEmptyTitle},
		{name: "anonymous author", post: models.Post{Title: "P", DiscussionID: 2}, wantErr: ErrInvalidAccountID},
		{name: "no discussion", post: models.Post{Title: "P", AccountID: 1}, wantErr: ErrInvalidDiscussion},
		{name: "post id scoped", post: models.Post{}, fields: []string{FieldPostID}, wantErr: ErrInvalidPostID},
		{name: "unknown field", post: models.Post{}, fields: []string{FieldPassword}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.post, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_PostUpdate
// ---------------------------------------------------------------------------

func TestValidate_PostUpdate(t *testing.T) {
	v := NewForumValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostUpdate{PostID: 1, Title: "t"}))
	assert.ErrorIs(t, v.Validate(ctx, models.PostUpdate{Title: "t"}), ErrInvalidPostID)
	assert.ErrorIs(t, v.Validate(ctx, models.PostUpdate{PostID: 1}), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, models.PostUpdate{PostID: 1}, FieldPostID))
	assert.ErrorIs(t, v.Validate(ctx, models.PostUpdate{}, FieldUsername), ErrUnknownField)
}
