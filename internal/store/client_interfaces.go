package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalBlobRepository is the client-side cache of encrypted attachments.
// Each row remembers whether the remote store has confirmed it.
type LocalBlobRepository interface {
	Save(ctx context.Context, blob models.VaultBlob, uploaded bool) error
	Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error)
	ListIDs(ctx context.Context, ownerID, vaultID string) ([]string, error)
	ListPendingUploads(ctx context.Context, ownerID, vaultID string) ([]string, error)
	MarkUploaded(ctx context.Context, ownerID, vaultID, blobID string) error
	Delete(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error
}

// BlobTombstoneRepository remembers blobs this device deleted locally whose
// remote copy is still to be removed.
type BlobTombstoneRepository interface {
	Add(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error
	List(ctx context.Context, ownerID, vaultID string) ([]string, error)
	Remove(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error
}

// VaultStateRepository keeps per-vault client state that outlives a restart.
type VaultStateRepository interface {
	// StorageMode returns the last active mode or ErrVaultStateNotFound.
	StorageMode(ctx context.Context, ownerID, vaultID string) (models.StorageMode, error)
	SaveStorageMode(ctx context.Context, ownerID, vaultID string, mode models.StorageMode) error
}

// SnapshotCacheRepository keeps at most one cached encrypted vault file per
// (owner, vault) together with its expiry.
type SnapshotCacheRepository interface {
	Save(ctx context.Context, entry models.CachedVaultFile) error
	Get(ctx context.Context, ownerID, vaultID string) (models.CachedVaultFile, error)
	Delete(ctx context.Context, ownerID, vaultID string) error
}

// VaultFileStorage is the durable on-disk copy of an encrypted vault file.
type VaultFileStorage interface {
	Save(ctx context.Context, file models.VaultFile) error
	Load(ctx context.Context, ownerID, vaultID string) (models.VaultFile, error)
	Delete(ctx context.Context, ownerID, vaultID string) error
}
