// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a registered forum member.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier assigned on creation.
	AccountID int64 `json:"id"`

	// Username is the unique login name, also shown as the post writer.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// Password carries the plaintext password only on its way from the
	// transport layer to the identity service. It is never persisted.
	Password string `json:"-"`

	// PasswordHash is the one-way (bcrypt) hash of the password.
	PasswordHash string `json:"-"`

	// SessionToken is the opaque token of the active session, nil when the
	// account is logged out.
	SessionToken *string `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// HasSession reports whether the account currently holds a session token.
func (a Account) HasSession() bool {
	return a.SessionToken != nil && *a.SessionToken != ""
}
