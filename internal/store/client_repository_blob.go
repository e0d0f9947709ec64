package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type localBlobRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalBlobRepository(db *DB, logger *logger.Logger) LocalBlobRepository {
	return &localBlobRepository{
		DB:     db,
		logger: logger,
	}
}

// Save upserts a cached blob. uploaded records whether the remote store
// already holds it.
func (l *localBlobRepository) Save(ctx context.Context, blob models.VaultBlob, uploaded bool) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveLocalBlob,
		blob.OwnerID,
		blob.VaultID,
		blob.BlobID,
		blob.Nonce,
		blob.Ciphertext,
		blob.SizeBytes,
		blob.SHA256,
		blob.MimeType,
		blob.FileName,
		blob.UpdatedAt,
		uploaded,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.Save").
			Str("vault_id", blob.VaultID).
			Str("blob_id", blob.BlobID).
			Msg("failed to execute upsert for local blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localBlobRepository) Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error) {
	log := logger.FromContext(ctx)

	var blob models.VaultBlob
	err := l.DB.QueryRowContext(ctx, getLocalBlob, ownerID, vaultID, blobID).Scan(
		&blob.OwnerID,
		&blob.VaultID,
		&blob.BlobID,
		&blob.Nonce,
		&blob.Ciphertext,
		&blob.SizeBytes,
		&blob.SHA256,
		&blob.MimeType,
		&blob.FileName,
		&blob.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultBlob{}, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.Get").
			Str("blob_id", blobID).
			Msg("failed to scan local blob row")
		return models.VaultBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

func (l *localBlobRepository) ListIDs(ctx context.Context, ownerID, vaultID string) ([]string, error) {
	return l.listIDs(ctx, "localBlobRepository.ListIDs", listLocalBlobIDs, ownerID, vaultID)
}

// ListPendingUploads returns the ids of cached blobs the remote store has
// not confirmed yet.
func (l *localBlobRepository) ListPendingUploads(ctx context.Context, ownerID, vaultID string) ([]string, error) {
	return l.listIDs(ctx, "localBlobRepository.ListPendingUploads", listPendingLocalBlobIDs, ownerID, vaultID)
}

func (l *localBlobRepository) MarkUploaded(ctx context.Context, ownerID, vaultID, blobID string) error {
	if _, err := l.DB.ExecContext(ctx, markLocalBlobUploaded, ownerID, vaultID, blobID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localBlobRepository.MarkUploaded").
			Str("blob_id", blobID).
			Msg("failed to mark local blob uploaded")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localBlobRepository) listIDs(ctx context.Context, funcName, query, ownerID, vaultID string) ([]string, error) {
	return queryIDs(ctx, l.DB, funcName, query, ownerID, vaultID)
}

// Delete removes the given blobs in one statement. Unknown ids are ignored.
func (l *localBlobRepository) Delete(ctx context.Context, ownerID, vaultID string, blobIDs ...string) error {
	if len(blobIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("local_blobs").
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID, "blob_id": blobIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localBlobRepository.Delete").
			Str("vault_id", vaultID).
			Int("count", len(blobIDs)).
			Msg("failed to delete local blobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
