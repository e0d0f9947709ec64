// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the auth middleware and the request decoders. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoIdentity is returned by handlers reached without an authenticated caller.
	ErrNoIdentity = errors.New("no caller identity in request context")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header is missing
	// or does not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
