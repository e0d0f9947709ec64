// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages the remote store writes into
// response bodies, so that every transport words failures the same way.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError replaces the text of errors that must not leak
	// to the caller, such as database or object store failures.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimedOut is the body of a request cut off by the server
	// request timeout.
	MsgRequestTimedOut = "request timed out"
)
