// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// DefaultMaxFileBytes is the per-blob plaintext size limit (20 MiB).
	DefaultMaxFileBytes int64 = 20 * 1024 * 1024

	// DefaultMaxVaultBytes is the per-vault total plaintext size limit (2 GiB).
	DefaultMaxVaultBytes int64 = 2 * 1024 * 1024 * 1024
)

// VaultBlob is an encrypted binary attachment keyed by (OwnerID, VaultID, BlobID).
//
// SizeBytes is the plaintext length and is what quotas are computed from.
// Nonce and Ciphertext are produced by the client and are opaque to the store.
type VaultBlob struct {
	OwnerID    string    `json:"owner_id,omitempty"`
	VaultID    string    `json:"vault_id,omitempty"`
	BlobID     string    `json:"blob_id"`
	Nonce      []byte    `json:"nonce"`
	Ciphertext []byte    `json:"ciphertext,omitempty"`
	SizeBytes  int64     `json:"size_bytes"`
	SHA256     string    `json:"sha256"`
	MimeType   string    `json:"mime_type"`
	FileName   string    `json:"file_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PutBlobRequest carries a blob write together with optional per-call
// quota overrides. Zero overrides fall back to the configured defaults.
type PutBlobRequest struct {
	Blob          VaultBlob `json:"blob"`
	MaxFileBytes  int64     `json:"max_file_bytes,omitempty"`
	MaxVaultBytes int64     `json:"max_vault_bytes,omitempty"`
}

// PutBlobResult reports the outcome of a blob write and the resulting
// vault usage.
type PutBlobResult struct {
	Accepted  bool  `json:"accepted"`
	UsedBytes int64 `json:"used_bytes"`
}

// DeleteBlobResult reports whether a row was removed and the vault usage
// after the call, whether or not anything was deleted.
type DeleteBlobResult struct {
	Deleted   bool  `json:"deleted"`
	UsedBytes int64 `json:"used_bytes"`
}

// QuotaLimits resolves the effective limits of a put, falling back to the
// given defaults for unset overrides.
func (r PutBlobRequest) QuotaLimits(defaultFile, defaultVault int64) (maxFile, maxVault int64) {
	maxFile, maxVault = defaultFile, defaultVault
	if r.MaxFileBytes > 0 {
		maxFile = r.MaxFileBytes
	}
	if r.MaxVaultBytes > 0 {
		maxVault = r.MaxVaultBytes
	}
	return maxFile, maxVault
}
