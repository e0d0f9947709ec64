package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/validators"
	"github.com/MKhiriev/go-vault-sync/models"
)

// SnapshotValidationService rejects malformed pushes before they reach the
// wrapped service.
type SnapshotValidationService struct {
	inner     SnapshotService
	validator validators.Validator
}

func NewSnapshotValidationService() SnapshotServiceWrapper {
	return &SnapshotValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *SnapshotValidationService) Pull(ctx context.Context, ownerID, vaultID string) (models.VaultSnapshot, error) {
	if err := v.validator.Validate(ctx, models.PushRequest{OwnerID: ownerID, VaultID: vaultID}, validators.FieldOwnerID, validators.FieldVaultID); err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Pull(ctx, ownerID, vaultID)
}

func (v *SnapshotValidationService) PullByOwner(ctx context.Context, ownerID string) (models.VaultSnapshot, error) {
	if err := v.validator.Validate(ctx, models.PushRequest{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.PullByOwner(ctx, ownerID)
}

func (v *SnapshotValidationService) PullByLegacyUserPrefix(ctx context.Context, identity models.Identity) (models.VaultSnapshot, error) {
	return v.inner.PullByLegacyUserPrefix(ctx, identity)
}

func (v *SnapshotValidationService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Push(ctx, req)
}

func (v *SnapshotValidationService) Wrap(inner SnapshotService) SnapshotService {
	v.inner = inner
	return v
}

// BlobValidationService rejects malformed blob requests before they reach
// the wrapped service.
type BlobValidationService struct {
	inner     BlobService
	validator validators.Validator
}

func NewBlobValidationService() BlobServiceWrapper {
	return &BlobValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *BlobValidationService) Put(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Put(ctx, req)
}

func (v *BlobValidationService) Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error) {
	if err := v.validateKey(ctx, ownerID, vaultID, blobID); err != nil {
		return models.VaultBlob{}, err
	}
	return v.inner.Get(ctx, ownerID, vaultID, blobID)
}

func (v *BlobValidationService) List(ctx context.Context, ownerID, vaultID string) ([]models.VaultBlob, error) {
	req := models.PutBlobRequest{Blob: models.VaultBlob{OwnerID: ownerID, VaultID: vaultID}}
	if err := v.validator.Validate(ctx, req, validators.FieldOwnerID, validators.FieldVaultID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, ownerID, vaultID)
}

func (v *BlobValidationService) Delete(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error) {
	if err := v.validateKey(ctx, ownerID, vaultID, blobID); err != nil {
		return models.DeleteBlobResult{}, err
	}
	return v.inner.Delete(ctx, ownerID, vaultID, blobID)
}

func (v *BlobValidationService) Wrap(inner BlobService) BlobService {
	v.inner = inner
	return v
}

func (v *BlobValidationService) validateKey(ctx context.Context, ownerID, vaultID, blobID string) error {
	req := models.PutBlobRequest{Blob: models.VaultBlob{OwnerID: ownerID, VaultID: vaultID, BlobID: blobID}}
	if err := v.validator.Validate(ctx, req, validators.FieldOwnerID, validators.FieldVaultID, validators.FieldBlobID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
