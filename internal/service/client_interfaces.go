// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

// ClientGCService reconciles stored blobs with the blob references of a
// payload.
type ClientGCService interface {
	// Collect deletes every locally cached blob that payload no longer
	// references. With blob sync permitted the same ids are queued for
	// remote deletion, and the queue is drained when remoteReachable is
	// true. Blobs this device never cached are left alone remotely. Remote
	// failures are reported and stay queued, never returned.
	Collect(ctx context.Context, payload models.VaultPayload, remoteReachable bool) (models.GCReport, error)
}

// ClientCacheService owns the local copies of the encrypted vault file.
type ClientCacheService interface {
	// Restore compares the configured mode with the one the vault was last
	// stored under and migrates the file when they differ. It must run
	// before the first Load.
	Restore(ctx context.Context) error

	// Store writes file to the canonical location of the current mode. In
	// durable mode the cache is refreshed as a mirror.
	Store(ctx context.Context, file models.VaultFile) error

	// Load reads the vault file from the canonical location.
	Load(ctx context.Context) (models.VaultFile, error)

	// Status reports whether the cached file exists, has expired or is missing at now.
	Status(ctx context.Context, now time.Time) (models.CacheStatus, error)

	Mode() models.StorageMode

	// SetMode moves the active file to the canonical location of mode
	// without changing its revision.
	SetMode(ctx context.Context, mode models.StorageMode) error

	// PurgeExpired drops an expired mirror entry. It never drops the only
	// local copy or a copy holding unsynced changes.
	PurgeExpired(ctx context.Context, now time.Time) (bool, error)
}

// ClientBlobService encrypts, caches and uploads attachments.
type ClientBlobService interface {
	// Attach encrypts data under a new blob id, caches it locally and, when
	// blob sync is on and the owning record is not localOnly, uploads it. A
	// quota refusal removes the local copy; an unreachable remote leaves it
	// pending.
	Attach(ctx context.Context, fileName, mimeType string, data []byte, localOnly bool) (models.BlobRef, error)

	// UploadPending uploads the pending blobs payload shares with the cloud
	// and returns their ids. Blobs of local-only records stay pending.
	UploadPending(ctx context.Context, payload models.VaultPayload) ([]string, error)

	// Open returns the plaintext of ref, fetching it from the remote store
	// when it is not cached locally.
	Open(ctx context.Context, ref models.BlobRef) ([]byte, error)
}

// ClientSyncService is the client sync coordinator. At most one cycle
// (Load, Refresh or Commit) runs at a time; a concurrent call fails with
// ErrSyncInProgress.
type ClientSyncService interface {
	// Load restores local state from the canonical local file.
	Load(ctx context.Context) (models.SyncReport, error)

	// Refresh pulls the remote snapshot and merges it when it is newer. A
	// dirty local state is pushed when the remote is not ahead.
	Refresh(ctx context.Context) (models.SyncReport, error)

	// Commit applies a local mutation and pushes it when sync is enabled.
	Commit(ctx context.Context, payload models.VaultPayload) (models.SyncReport, error)

	// MoveFolder reparents a folder of the current payload and commits the
	// result. Moves that would create a cycle fail with models.ErrFolderCycle
	// and change nothing.
	MoveFolder(ctx context.Context, folderID, newParentID string) (models.SyncReport, error)

	// Snapshot returns a copy of the current local state.
	Snapshot() VaultState
}

// ClientSyncJob runs scheduled and event-triggered refreshes.
type ClientSyncJob interface {
	// Start launches the refresh loop. Any running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop stops the loop and waits for it to exit.
	Stop()

	// Run starts the loop and blocks until ctx is done.
	Run(ctx context.Context)

	// Notify requests a refresh for a remote revision announced out of band.
	// Revisions not newer than the local one are ignored.
	Notify(revision int64)
}
