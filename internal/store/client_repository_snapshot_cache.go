package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type snapshotCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotCacheRepository(db *DB, logger *logger.Logger) SnapshotCacheRepository {
	return &snapshotCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// Save replaces the cached file of the entry's vault.
func (s *snapshotCacheRepository) Save(ctx context.Context, entry models.CachedVaultFile) error {
	log := logger.FromContext(ctx)
	file := entry.File

	_, err := s.DB.ExecContext(ctx, saveCachedSnapshot,
		file.OwnerID,
		file.VaultID,
		file.Revision,
		file.EncryptedFile,
		file.UpdatedAt,
		file.Dirty,
		entry.CachedAt,
		entry.ExpiresAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotCacheRepository.Save").
			Str("vault_id", file.VaultID).
			Int64("revision", file.Revision).
			Msg("failed to save cached snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *snapshotCacheRepository) Get(ctx context.Context, ownerID, vaultID string) (models.CachedVaultFile, error) {
	log := logger.FromContext(ctx)

	var entry models.CachedVaultFile
	err := s.DB.QueryRowContext(ctx, getCachedSnapshot, ownerID, vaultID).Scan(
		&entry.File.OwnerID,
		&entry.File.VaultID,
		&entry.File.Revision,
		&entry.File.EncryptedFile,
		&entry.File.UpdatedAt,
		&entry.File.Dirty,
		&entry.CachedAt,
		&entry.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedVaultFile{}, ErrCacheEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotCacheRepository.Get").
			Str("vault_id", vaultID).
			Msg("failed to scan cached snapshot row")
		return models.CachedVaultFile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (s *snapshotCacheRepository) Delete(ctx context.Context, ownerID, vaultID string) error {
	if _, err := s.DB.ExecContext(ctx, deleteCachedSnapshot, ownerID, vaultID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotCacheRepository.Delete").
			Str("vault_id", vaultID).
			Msg("failed to delete cached snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
