// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the lifecycle of the client daemon.
type Client interface {
	// Run blocks until ctx is done.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
