// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TrashKind is the wire discriminator of a trash entry.
type TrashKind string

const (
	TrashKindItem        TrashKind = "itemSnapshot"
	TrashKindStorageItem TrashKind = "storageItemSnapshot"
	TrashKindFolderTree  TrashKind = "folderTreeSnapshot"
)

// TrashSnapshot is the deleted content carried by a trash entry.
// Only ItemSnapshot, StorageItemSnapshot and FolderTreeSnapshot implement it.
type TrashSnapshot interface {
	Kind() TrashKind
	isTrashSnapshot()
}

// ItemSnapshot is a full copy of a deleted item.
type ItemSnapshot struct {
	Item Item `json:"item"`
}

// StorageItemSnapshot is a full copy of a deleted storage item. Its blob is
// kept alive by the garbage collector while the entry stays in the trash.
type StorageItemSnapshot struct {
	StorageItem StorageItem `json:"storage_item"`
}

// FolderTreeSnapshot is a deleted folder together with everything nested
// under it at deletion time.
type FolderTreeSnapshot struct {
	Folders      []Folder      `json:"folders"`
	Items        []Item        `json:"items"`
	StorageItems []StorageItem `json:"storage_items"`
}

func (ItemSnapshot) Kind() TrashKind        { return TrashKindItem }
func (StorageItemSnapshot) Kind() TrashKind { return TrashKindStorageItem }
func (FolderTreeSnapshot) Kind() TrashKind  { return TrashKindFolderTree }

func (ItemSnapshot) isTrashSnapshot()        {}
func (StorageItemSnapshot) isTrashSnapshot() {}
func (FolderTreeSnapshot) isTrashSnapshot()  {}

// TrashEntry is one deleted object waiting in the trash until PurgeAt.
type TrashEntry struct {
	ID        string
	DeletedAt time.Time
	PurgeAt   time.Time
	Snapshot  TrashSnapshot
}

// Kind returns the discriminator of the entry snapshot, or "" when empty.
func (e TrashEntry) Kind() TrashKind {
	if e.Snapshot == nil {
		return ""
	}
	return e.Snapshot.Kind()
}

// ReferencedBlobID returns the blob id kept alive by this entry. Only
// storage item snapshots with a blob reference keep a blob alive.
func (e TrashEntry) ReferencedBlobID() (string, bool) {
	s, ok := e.Snapshot.(StorageItemSnapshot)
	if !ok || s.StorageItem.BlobRef == nil || s.StorageItem.BlobRef.BlobID == "" {
		return "", false
	}
	return s.StorageItem.BlobRef.BlobID, true
}

type trashEntryJSON struct {
	ID        string          `json:"id"`
	Kind      TrashKind       `json:"kind"`
	DeletedAt time.Time       `json:"deleted_at"`
	PurgeAt   time.Time       `json:"purge_at"`
	Payload   json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the entry as a kind-tagged object.
func (e TrashEntry) MarshalJSON() ([]byte, error) {
	if e.Snapshot == nil {
		return nil, fmt.Errorf("%w: trash entry %q has no snapshot", ErrUnknownTrashKind, e.ID)
	}

	payload, err := json.Marshal(e.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("error encoding trash payload: %w", err)
	}

	return json.Marshal(trashEntryJSON{
		ID:        e.ID,
		Kind:      e.Snapshot.Kind(),
		DeletedAt: e.DeletedAt,
		PurgeAt:   e.PurgeAt,
		Payload:   payload,
	})
}

// UnmarshalJSON decodes a kind-tagged object into the matching variant.
func (e *TrashEntry) UnmarshalJSON(data []byte) error {
	var raw trashEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding trash entry: %w", err)
	}

	var snapshot TrashSnapshot
	switch raw.Kind {
	case TrashKindItem:
		var s ItemSnapshot
		if err := json.Unmarshal(raw.Payload, &s); err != nil {
			return fmt.Errorf("error decoding %s: %w", raw.Kind, err)
		}
		snapshot = s
	case TrashKindStorageItem:
		var s StorageItemSnapshot
		if err := json.Unmarshal(raw.Payload, &s); err != nil {
			return fmt.Errorf("error decoding %s: %w", raw.Kind, err)
		}
		snapshot = s
	case TrashKindFolderTree:
		var s FolderTreeSnapshot
		if err := json.Unmarshal(raw.Payload, &s); err != nil {
			return fmt.Errorf("error decoding %s: %w", raw.Kind, err)
		}
		snapshot = s
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTrashKind, raw.Kind)
	}

	*e = TrashEntry{
		ID:        raw.ID,
		DeletedAt: raw.DeletedAt,
		PurgeAt:   raw.PurgeAt,
		Snapshot:  snapshot,
	}
	return nil
}
