// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/models"
)

// LocalOwnerID keys local storage when no access token is configured.
const LocalOwnerID = "local"

// ClientOptions is the per-vault runtime scope shared by the client services.
type ClientOptions struct {
	OwnerID string
	VaultID string

	// SyncEnabled turns snapshot push and pull on.
	SyncEnabled bool

	// BlobSync grants remote blob put and delete.
	BlobSync bool

	CacheTTL time.Duration
	Mode     models.StorageMode

	MaxFileBytes  int64
	MaxVaultBytes int64
}

// NewClientOptions derives the options of ownerID's vault from cfg.
func NewClientOptions(cfg config.ClientConfig, ownerID string) ClientOptions {
	if ownerID == "" {
		ownerID = LocalOwnerID
	}

	return ClientOptions{
		OwnerID:       ownerID,
		VaultID:       cfg.App.VaultID,
		SyncEnabled:   cfg.Sync.Enabled,
		BlobSync:      cfg.Sync.Enabled && cfg.Sync.Blobs,
		CacheTTL:      cfg.Storage.CacheTTL,
		Mode:          cfg.Storage.Mode,
		MaxFileBytes:  cfg.Storage.MaxFileBytes,
		MaxVaultBytes: cfg.Storage.MaxVaultBytes,
	}
}

// remoteBlobsAllowed reports whether blob writes and deletes may go remote.
func (o ClientOptions) remoteBlobsAllowed() bool {
	return o.SyncEnabled && o.BlobSync
}
