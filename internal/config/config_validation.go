// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: values that are wrong no matter which binary reads them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Blobs.MaxFileBytes < 0 || cfg.Storage.Blobs.MaxVaultBytes < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Cache.TTLHours < 0 {
		return ErrInvalidStorageConfigs
	}

	if _, err := models.ParseStorageMode(cfg.Storage.Cache.Mode); err != nil {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// validateServer checks the settings the remote store server requires.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.S3.Enabled() && cfg.Storage.S3.Region == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Mode == models.StorageModeDurable && cfg.Storage.VaultDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.Enabled && (cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.VaultID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Sync.Enabled && cfg.App.AccessToken == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
