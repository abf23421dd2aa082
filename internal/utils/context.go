// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization and identifier generation.
package utils

import (
	"context"
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

// SessionEmailCtxKey is the key under which the session middleware stores
// the email of the account bound to the request's session cookie.
//
//	ctx := context.WithValue(ctx, utils.SessionEmailCtxKey, "a@b.c")
var SessionEmailCtxKey = contextKey("sessionEmail")

// GetSessionEmailFromContext retrieves the authenticated account email.
//
// Returns the email and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: no authenticated session is attached to ctx
func GetSessionEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(SessionEmailCtxKey).(string)
	return email, ok && email != ""
}
