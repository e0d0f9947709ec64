// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the client sync daemon: local storage, the remote
// store adapter, the vault cipher and the sync services.
package client
