// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session
// envelope signing and validation, session token generation and HTTP
// request/response helpers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-forum/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the auth middleware stores the
// authenticated [models.Account].
var AccountCtxKey = contextKey("account")

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account models.Account) context.Context {
	return context.WithValue(ctx, AccountCtxKey, account)
}

// GetAccountFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag:
//   - ok == true  - an account with a non-zero id is present
//   - ok == false - value is missing, has an unexpected type or is anonymous
//
// Example usage:
//
//	account, ok := utils.GetAccountFromContext(ctx)
//	if !ok {
//	    // redirect to login
//	}
func GetAccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(models.Account)
	if !ok || account.AccountID == 0 {
		return models.Account{}, false
	}

	return account, true
}
