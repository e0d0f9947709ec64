package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type blobTombstoneRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewBlobTombstoneRepository(db *DB, logger *logger.Logger) BlobTombstoneRepository {
	return &blobTombstoneRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Add records blob ids whose remote copy still has to be deleted. Ids that
// are already recorded keep their original position.
func (b *blobTombstoneRepository) Add(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error {
	if len(blobIDs) == 0 {
		return nil
	}

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	createdAt := b.now().UTC()
	for _, id := range blobIDs {
		if _, err = tx.ExecContext(ctx, addBlobTombstone, ownerID, vaultID, id, createdAt); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "blobTombstoneRepository.Add").
				Str("blob_id", id).
				Msg("failed to record blob tombstone")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (b *blobTombstoneRepository) List(ctx context.Context, ownerID, vaultID string) ([]string, error) {
	return queryIDs(ctx, b.DB, "blobTombstoneRepository.List", listBlobTombstones, ownerID, vaultID)
}

func (b *blobTombstoneRepository) Remove(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error {
	if len(blobIDs) == 0 {
		return nil
	}

	query, args, err := sq.Delete("blob_tombstones").
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID, "blob_id": blobIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobTombstoneRepository.Remove").
			Int("count", len(blobIDs)).
			Msg("failed to remove blob tombstones")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type vaultStateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewVaultStateRepository(db *DB, logger *logger.Logger) VaultStateRepository {
	return &vaultStateRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (v *vaultStateRepository) StorageMode(ctx context.Context, ownerID, vaultID string) (models.StorageMode, error) {
	var mode string
	err := v.DB.QueryRowContext(ctx, getVaultStorageMode, ownerID, vaultID).Scan(&mode)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrVaultStateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultStateRepository.StorageMode").
			Str("vault_id", vaultID).
			Msg("failed to read vault storage mode")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.StorageMode(mode), nil
}

func (v *vaultStateRepository) SaveStorageMode(ctx context.Context, ownerID, vaultID string, mode models.StorageMode) error {
	if _, err := v.DB.ExecContext(ctx, saveVaultStorageMode, ownerID, vaultID, string(mode), v.now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultStateRepository.SaveStorageMode").
			Str("vault_id", vaultID).
			Str("mode", string(mode)).
			Msg("failed to save vault storage mode")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// queryIDs runs a single-column id query with (owner, vault) arguments.
func queryIDs(ctx context.Context, db *DB, funcName, query, ownerID, vaultID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, ownerID, vaultID)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("vault_id", vaultID).
			Msg("failed to execute id query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}
