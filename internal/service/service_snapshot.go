package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type snapshotService struct {
	repository store.SnapshotRepository
	logger     *logger.Logger
}

func NewSnapshotService(repository store.SnapshotRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		repository: repository,
		logger:     logger,
	}
}

func (s *snapshotService) Pull(ctx context.Context, ownerID, vaultID string) (models.VaultSnapshot, error) {
	snapshot, err := s.repository.Pull(ctx, ownerID, vaultID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("error pulling snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *snapshotService) PullByOwner(ctx context.Context, ownerID string) (models.VaultSnapshot, error) {
	snapshot, err := s.repository.PullByOwner(ctx, ownerID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("error pulling latest owner snapshot: %w", err)
	}
	return snapshot, nil
}

// PullByLegacyUserPrefix looks up snapshots written under the deprecated
// per-session owner keys of the caller's account.
func (s *snapshotService) PullByLegacyUserPrefix(ctx context.Context, identity models.Identity) (models.VaultSnapshot, error) {
	if identity.UserID == "" {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", store.ErrSnapshotNotFound, ErrNoLegacyAccount)
	}

	snapshot, err := s.repository.PullByLegacyUserPrefix(ctx, identity.UserID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("error pulling legacy snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *snapshotService) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.repository.Push(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Push").Str("vault_id", req.VaultID).Msg("push failed")
		return models.PushResult{}, fmt.Errorf("error pushing snapshot: %w", err)
	}

	if !result.Accepted {
		log.Info().Str("vault_id", req.VaultID).Int64("revision", req.Revision).Msg("stale push rejected")
	}

	return result, nil
}
