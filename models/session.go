// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the result of a successful login.
//
// Token is the opaque random value stored on the account row. SignedString
// is the HS256 envelope around Token that is handed to the client (cookie
// or bearer header); only envelopes signed with the server secret are
// accepted back.
type Session struct {
	AccountID    int64     `json:"-"`
	Token        string    `json:"-"`
	SignedString string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// String returns the signed session string.
// It implements the [fmt.Stringer] interface.
func (s Session) String() string {
	return s.SignedString
}

// SessionClaims is the claim set of a signed session envelope. The session
// token travels in the "sub" claim.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionToken returns the opaque session token carried by the claims.
func (c SessionClaims) SessionToken() (string, error) {
	return c.GetSubject()
}
