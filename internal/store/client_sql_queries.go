// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveLocalBlob = `
		INSERT INTO local_blobs (
			owner_id,
			vault_id,
			blob_id,
			nonce,
			ciphertext,
			size_bytes,
			sha256,
			mime_type,
			file_name,
			updated_at,
			uploaded
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, vault_id, blob_id) DO UPDATE SET
			nonce      = excluded.nonce,
			ciphertext = excluded.ciphertext,
			size_bytes = excluded.size_bytes,
			sha256     = excluded.sha256,
			mime_type  = excluded.mime_type,
			file_name  = excluded.file_name,
			updated_at = excluded.updated_at,
			uploaded   = excluded.uploaded;`

	getLocalBlob = `
		SELECT
			owner_id,
			vault_id,
			blob_id,
			nonce,
			ciphertext,
			size_bytes,
			sha256,
			mime_type,
			file_name,
			updated_at
		FROM local_blobs
		WHERE owner_id = ? AND vault_id = ? AND blob_id = ?;`

	listLocalBlobIDs = `
		SELECT blob_id
		FROM local_blobs
		WHERE owner_id = ? AND vault_id = ?
		ORDER BY blob_id;`

	listPendingLocalBlobIDs = `
		SELECT blob_id
		FROM local_blobs
		WHERE owner_id = ? AND vault_id = ? AND uploaded = 0
		ORDER BY blob_id;`

	markLocalBlobUploaded = `
		UPDATE local_blobs
		SET uploaded = 1
		WHERE owner_id = ? AND vault_id = ? AND blob_id = ?;`

	addBlobTombstone = `
		INSERT INTO blob_tombstones (owner_id, vault_id, blob_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id, vault_id, blob_id) DO NOTHING;`

	listBlobTombstones = `
		SELECT blob_id
		FROM blob_tombstones
		WHERE owner_id = ? AND vault_id = ?
		ORDER BY created_at, blob_id;`

	saveVaultStorageMode = `
		INSERT INTO vault_state (owner_id, vault_id, storage_mode, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id, vault_id) DO UPDATE SET
			storage_mode = excluded.storage_mode,
			updated_at   = excluded.updated_at;`

	getVaultStorageMode = `
		SELECT storage_mode
		FROM vault_state
		WHERE owner_id = ? AND vault_id = ?;`

	saveCachedSnapshot = `
		INSERT INTO snapshot_cache (
			owner_id,
			vault_id,
			revision,
			encrypted_file,
			updated_at,
			dirty,
			cached_at,
			expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, vault_id) DO UPDATE SET
			revision       = excluded.revision,
			encrypted_file = excluded.encrypted_file,
			updated_at     = excluded.updated_at,
			dirty          = excluded.dirty,
			cached_at      = excluded.cached_at,
			expires_at     = excluded.expires_at;`

	getCachedSnapshot = `
		SELECT
			owner_id,
			vault_id,
			revision,
			encrypted_file,
			updated_at,
			dirty,
			cached_at,
			expires_at
		FROM snapshot_cache
		WHERE owner_id = ? AND vault_id = ?;`

	deleteCachedSnapshot = `
		DELETE FROM snapshot_cache
		WHERE owner_id = ? AND vault_id = ?;`
)
