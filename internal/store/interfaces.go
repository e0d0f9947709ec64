package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists one encrypted snapshot per (owner, vault) with
// a revision that never decreases.
type SnapshotRepository interface {
	Pull(ctx context.Context, ownerID, vaultID string) (models.VaultSnapshot, error)
	PullByOwner(ctx context.Context, ownerID string) (models.VaultSnapshot, error)
	PullByLegacyUserPrefix(ctx context.Context, userID string) (models.VaultSnapshot, error)
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)
}

// BlobRepository persists encrypted attachments and enforces the per-file and
// per-vault quotas.
type BlobRepository interface {
	Put(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error)
	Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error)
	List(ctx context.Context, ownerID, vaultID string) ([]models.VaultBlob, error)
	Delete(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error)
	Usage(ctx context.Context, ownerID, vaultID string) (int64, error)
}

// BlobContentStore keeps blob ciphertext outside the database.
type BlobContentStore interface {
	PutObject(ctx context.Context, key string, data []byte) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error
}
