// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// legacyOwnerPrefix is the deprecated owner key format "user:<userID>|<sessionID>".
const legacyOwnerPrefix = "user:"

// LegacyOwnerKey builds an owner key in the deprecated per-session format.
func LegacyOwnerKey(userID, sessionID string) string {
	return legacyOwnerPrefix + userID + "|" + sessionID
}

// LegacyOwnerPrefix returns the prefix every legacy owner key of userID starts with.
func LegacyOwnerPrefix(userID string) string {
	return legacyOwnerPrefix + userID + "|"
}

// Identity is the caller resolved from an access token.
type Identity struct {
	// OwnerID scopes every snapshot and blob the caller can reach.
	OwnerID string
	// UserID is set for accounts that may still own legacy prefixed snapshots.
	UserID string
}

// IdentityClaims is the JWT claim set of an access token. The subject is the
// owner id.
type IdentityClaims struct {
	jwt.RegisteredClaims

	// UserID is the account id used for legacy owner key lookups.
	UserID string `json:"uid,omitempty"`
}

// Identity converts the claim set into an [Identity].
func (c *IdentityClaims) Identity() (Identity, error) {
	owner, err := c.GetSubject()
	if err != nil {
		return Identity{}, fmt.Errorf("error extracting owner from token: %w", err)
	}
	if owner == "" {
		return Identity{}, errors.New("empty token subject")
	}

	return Identity{OwnerID: owner, UserID: c.UserID}, nil
}
