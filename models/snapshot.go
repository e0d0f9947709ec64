// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultSnapshot is one complete encrypted copy of a vault payload stored by
// the remote snapshot store. The store never interprets EncryptedFile.
type VaultSnapshot struct {
	// OwnerID is the opaque identifier of the account/session owning the vault.
	OwnerID string `json:"owner_id"`

	// VaultID identifies one logical vault document scoped under OwnerID.
	VaultID string `json:"vault_id"`

	// Revision is stamped on every accepted write and never decreases for a
	// fixed (OwnerID, VaultID) pair.
	Revision int64 `json:"revision"`

	// EncryptedFile is the ciphertext of the whole vault payload.
	EncryptedFile []byte `json:"encrypted_file"`

	// UpdatedAt is the client-provided time of the write.
	UpdatedAt time.Time `json:"updated_at"`
}

// PushRequest carries a snapshot write. OwnerID is resolved from the caller
// identity on the server and is never taken from the request body.
type PushRequest struct {
	OwnerID       string    `json:"-"`
	VaultID       string    `json:"-"`
	Revision      int64     `json:"revision"`
	EncryptedFile []byte    `json:"encrypted_file"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PushResult reports whether the snapshot store accepted a push.
type PushResult struct {
	Accepted bool `json:"accepted"`
}

// Snapshot converts the request into the row it would produce when accepted.
func (r PushRequest) Snapshot() VaultSnapshot {
	return VaultSnapshot{
		OwnerID:       r.OwnerID,
		VaultID:       r.VaultID,
		Revision:      r.Revision,
		EncryptedFile: r.EncryptedFile,
		UpdatedAt:     r.UpdatedAt,
	}
}
