// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, access token
// generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the caller [models.Identity] in
// the context. The auth middleware writes it; handlers read it through
// GetIdentityFromContext.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// Returns ok == false when the value is missing, has an unexpected type or
// carries an empty owner id.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.OwnerID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
