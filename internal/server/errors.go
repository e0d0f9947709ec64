// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the config enables
	// no transport that has a handler.
	errNoServersAreCreated = errors.New("no servers are created")

	// errTransportStopped is returned by Run when a transport exits before
	// shutdown was requested.
	errTransportStopped = errors.New("transport stopped unexpectedly")
)
