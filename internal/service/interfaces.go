package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

// SnapshotService serves the snapshot push/pull protocol for authenticated
// callers.
type SnapshotService interface {
	Pull(ctx context.Context, ownerID, vaultID string) (models.VaultSnapshot, error)
	PullByOwner(ctx context.Context, ownerID string) (models.VaultSnapshot, error)
	PullByLegacyUserPrefix(ctx context.Context, identity models.Identity) (models.VaultSnapshot, error)

	// Push never reports a stale revision as an error: a rejected push
	// returns Accepted == false and a nil error.
	Push(ctx context.Context, req models.PushRequest) (models.PushResult, error)
}

// BlobService serves quota-checked encrypted attachments.
type BlobService interface {
	Put(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error)
	Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error)
	List(ctx context.Context, ownerID, vaultID string) ([]models.VaultBlob, error)
	Delete(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error)
}

type IdentityService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SnapshotServiceWrapper decorates a SnapshotService, e.g. with validation.
type SnapshotServiceWrapper interface {
	Wrap(SnapshotService) SnapshotService
}

// BlobServiceWrapper decorates a BlobService.
type BlobServiceWrapper interface {
	Wrap(BlobService) BlobService
}
