// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// VaultPayload is the decrypted, client-owned content of a vault.
//
// Collections keep insertion order. The remote side only ever sees the
// payload as ciphertext produced by the client cipher.
type VaultPayload struct {
	Items        []Item        `json:"items"`
	StorageItems []StorageItem `json:"storage_items"`
	Folders      []Folder      `json:"folders"`
	Trash        []TrashEntry  `json:"trash"`
	Settings     Settings      `json:"settings"`
}

// Item is a secret record (login, note, card...). Fields holds the item body
// as an opaque JSON document.
type Item struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Fields               json.RawMessage `json:"fields,omitempty"`
	FolderID             string          `json:"folder_id,omitempty"`
	ExcludeFromCloudSync bool            `json:"exclude_from_cloud_sync,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// StorageItem is a record that owns an encrypted file attachment.
type StorageItem struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Notes                string    `json:"notes,omitempty"`
	BlobRef              *BlobRef  `json:"blob_ref,omitempty"`
	FolderID             string    `json:"folder_id,omitempty"`
	ExcludeFromCloudSync bool      `json:"exclude_from_cloud_sync,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// BlobRef links a storage item to a blob in the blob store.
type BlobRef struct {
	BlobID    string `json:"blob_id"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// Folder is a node of the folder forest. An empty ParentID marks a root.
type Folder struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	ParentID             string    `json:"parent_id,omitempty"`
	ExcludeFromCloudSync bool      `json:"exclude_from_cloud_sync,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Settings are vault-wide preferences. They are never partitioned by
// cloud-sync exclusion.
type Settings struct {
	TrashRetentionDays    int  `json:"trash_retention_days,omitempty"`
	AutoLockMinutes       int  `json:"auto_lock_minutes,omitempty"`
	ClipboardClearSeconds int  `json:"clipboard_clear_seconds,omitempty"`
	CloudSyncEnabled      bool `json:"cloud_sync_enabled,omitempty"`
}

// IsEmpty reports whether the payload holds no records at all.
func (p VaultPayload) IsEmpty() bool {
	return len(p.Items) == 0 && len(p.StorageItems) == 0 && len(p.Folders) == 0 && len(p.Trash) == 0
}
