// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncState is the state of a client sync coordinator. Only one pull or push
// cycle may be in flight per coordinator.
type SyncState int

const (
	SyncStateIdle SyncState = iota
	SyncStatePulling
	SyncStatePushing
)

// String returns a human-readable state name.
func (s SyncState) String() string {
	switch s {
	case SyncStateIdle:
		return "idle"
	case SyncStatePulling:
		return "pulling"
	case SyncStatePushing:
		return "pushing"
	default:
		return fmt.Sprintf("SyncState(%d)", int(s))
	}
}

// SyncStatus is the outcome of the last sync cycle as shown to the user.
type SyncStatus string

const (
	// SyncStatusOK means local and remote agree on the revision.
	SyncStatusOK SyncStatus = "ok"
	// SyncStatusLocalOnly means sync is disabled and changes were saved locally.
	SyncStatusLocalOnly SyncStatus = "local-only"
	// SyncStatusDegraded means the remote store was unreachable; local state is kept.
	SyncStatusDegraded SyncStatus = "degraded"
	// SyncStatusStale means a push lost a revision race and the client re-pulled.
	SyncStatusStale SyncStatus = "stale"
	// SyncStatusDecryptFailed means a pulled snapshot could not be decrypted.
	SyncStatusDecryptFailed SyncStatus = "decrypt-failed"
)

// SyncReport describes what one sync cycle did.
type SyncReport struct {
	Status   SyncStatus
	Revision int64
	Pulled   bool
	Pushed   bool
	Merged   bool
}

// VaultFile is the encrypted local representation of a vault: the full
// payload ciphertext plus the revision it corresponds to.
type VaultFile struct {
	OwnerID       string    `json:"owner_id"`
	VaultID       string    `json:"vault_id"`
	Revision      int64     `json:"revision"`
	EncryptedFile []byte    `json:"encrypted_file"`
	UpdatedAt     time.Time `json:"updated_at"`
	// Dirty marks local changes that were not accepted by the remote store yet.
	Dirty bool `json:"dirty,omitempty"`
}

// StorageMode selects which local location is canonical.
type StorageMode string

const (
	// StorageModeDurable keeps a durable vault file as canonical and the
	// cache as a mirror.
	StorageModeDurable StorageMode = "durable"
	// StorageModeCacheOnly keeps the cache as the only local copy.
	StorageModeCacheOnly StorageMode = "cache-only"
)

// ParseStorageMode validates a configured storage mode. Empty selects durable.
func ParseStorageMode(s string) (StorageMode, error) {
	switch StorageMode(s) {
	case "", StorageModeDurable:
		return StorageModeDurable, nil
	case StorageModeCacheOnly:
		return StorageModeCacheOnly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStorageMode, s)
	}
}

// CacheState is the lifecycle state of the cached vault file.
type CacheState string

const (
	CacheStateExists  CacheState = "exists"
	CacheStateExpired CacheState = "expired"
	CacheStateMissing CacheState = "missing"
)

// CachedVaultFile is a vault file stored in the local cache with its expiry.
type CachedVaultFile struct {
	File      VaultFile
	CachedAt  time.Time
	ExpiresAt time.Time
}

// CacheStatus reports the cache state and, unless missing, its expiry time.
type CacheStatus struct {
	State     CacheState
	ExpiresAt time.Time
	Revision  int64
}

// GCReport summarises one garbage collection pass.
type GCReport struct {
	Kept          int
	LocalDeleted  []string
	RemoteDeleted []string
	RemoteFailed  []string
}
