package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type blobService struct {
	repository store.BlobRepository
	logger     *logger.Logger

	now func() time.Time
}

func NewBlobService(repository store.BlobRepository, logger *logger.Logger) BlobService {
	return &blobService{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// Put stores the blob, stamping UpdatedAt when the client left it empty.
// Quota errors from the repository are passed through wrapped.
func (s *blobService) Put(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
	if req.Blob.UpdatedAt.IsZero() {
		req.Blob.UpdatedAt = s.now().UTC()
	}

	result, err := s.repository.Put(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobService.Put").
			Str("vault_id", req.Blob.VaultID).
			Str("blob_id", req.Blob.BlobID).
			Int64("size_bytes", req.Blob.SizeBytes).
			Msg("blob put refused")
		return models.PutBlobResult{}, fmt.Errorf("error putting blob: %w", err)
	}

	return result, nil
}

func (s *blobService) Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error) {
	blob, err := s.repository.Get(ctx, ownerID, vaultID, blobID)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("error getting blob: %w", err)
	}
	return blob, nil
}

func (s *blobService) List(ctx context.Context, ownerID, vaultID string) ([]models.VaultBlob, error) {
	blobs, err := s.repository.List(ctx, ownerID, vaultID)
	if err != nil {
		return nil, fmt.Errorf("error listing blobs: %w", err)
	}
	if blobs == nil {
		blobs = []models.VaultBlob{}
	}
	return blobs, nil
}

func (s *blobService) Delete(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error) {
	result, err := s.repository.Delete(ctx, ownerID, vaultID, blobID)
	if err != nil {
		return models.DeleteBlobResult{}, fmt.Errorf("error deleting blob: %w", err)
	}
	return result, nil
}
