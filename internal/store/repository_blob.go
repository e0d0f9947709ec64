package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// blobRepository is the PostgreSQL-backed implementation of [BlobRepository].
//
// Writers of one vault are serialised with a transaction-scoped advisory lock
// keyed by owner and vault, so the usage sum read before an insert cannot be
// invalidated by a concurrent put to the same vault. When contents is set,
// ciphertext is written to the object store and the row keeps only its key.
// Every write gets a fresh key, so a row never points at ciphertext written
// for another nonce.
type blobRepository struct {
	*DB
	contents      BlobContentStore
	maxFileBytes  int64
	maxVaultBytes int64
	objectVersion func() string
	logger        *logger.Logger
}

// NewBlobRepository constructs a [BlobRepository]. Non-positive limits fall
// back to [models.DefaultMaxFileBytes] and [models.DefaultMaxVaultBytes].
// contents may be nil to keep ciphertext inline.
func NewBlobRepository(db *DB, contents BlobContentStore, maxFileBytes, maxVaultBytes int64, logger *logger.Logger) BlobRepository {
	if maxFileBytes <= 0 {
		maxFileBytes = models.DefaultMaxFileBytes
	}
	if maxVaultBytes <= 0 {
		maxVaultBytes = models.DefaultMaxVaultBytes
	}

	return &blobRepository{
		DB:            db,
		contents:      contents,
		maxFileBytes:  maxFileBytes,
		maxVaultBytes: maxVaultBytes,
		objectVersion: newObjectVersion,
		logger:        logger,
	}
}

// Put inserts or replaces a blob after checking the per-file limit and the
// vault quota. The usage the quota is checked against leaves out the blob
// being replaced.
func (b *blobRepository) Put(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
	log := logger.FromContext(ctx)
	blob := req.Blob
	maxFile, maxVault := req.QuotaLimits(b.maxFileBytes, b.maxVaultBytes)

	if blob.SizeBytes <= 0 || blob.SizeBytes > maxFile {
		return models.PutBlobResult{}, fmt.Errorf("%w: size %d, limit %d", ErrFileSizeLimitExceeded, blob.SizeBytes, maxFile)
	}

	var result models.PutBlobResult
	err := b.withRetry(ctx, func() error {
		var txErr error
		result, txErr = b.putTx(ctx, blob, maxVault)
		return txErr
	})
	if err != nil {
		if !errors.Is(err, ErrVaultQuotaExceeded) {
			log.Err(err).
				Str("func", "blobRepository.Put").
				Str("vault_id", blob.VaultID).
				Str("blob_id", blob.BlobID).
				Str("pg_code", postgresError(err)).
				Msg("failed to put blob")
		}
		return models.PutBlobResult{}, err
	}

	return result, nil
}

func (b *blobRepository) putTx(ctx context.Context, blob models.VaultBlob, maxVault int64) (res models.PutBlobResult, err error) {
	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockVault, vaultLockKey(blob.OwnerID, blob.VaultID)); err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	used, err := b.usage(ctx, tx, blob.OwnerID, blob.VaultID, blob.BlobID)
	if err != nil {
		return models.PutBlobResult{}, err
	}
	if used+blob.SizeBytes > maxVault {
		return models.PutBlobResult{}, fmt.Errorf("%w: used %d, adding %d, limit %d",
			ErrVaultQuotaExceeded, used, blob.SizeBytes, maxVault)
	}

	var objectKey, previousKey string
	if b.contents != nil {
		if previousKey, err = b.storedObjectKey(ctx, tx, blob.OwnerID, blob.VaultID, blob.BlobID); err != nil {
			return models.PutBlobResult{}, err
		}

		objectKey = blobObjectKey(blob.OwnerID, blob.VaultID, blob.BlobID, b.objectVersion())
		if err = b.contents.PutObject(ctx, objectKey, blob.Ciphertext); err != nil {
			return models.PutBlobResult{}, err
		}
		defer func() {
			if err != nil {
				b.discardObject(ctx, objectKey)
			}
		}()
	}

	query, args, err := buildUpsertBlobQuery(blob, objectKey)
	if err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.PutBlobResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if previousKey != "" && previousKey != objectKey {
		b.discardObject(ctx, previousKey)
	}

	return models.PutBlobResult{Accepted: true, UsedBytes: used + blob.SizeBytes}, nil
}

// storedObjectKey returns the object key of the current row of a blob, or ""
// when the blob is new or stored inline.
func (b *blobRepository) storedObjectKey(ctx context.Context, q queryRower, ownerID, vaultID, blobID string) (string, error) {
	query, args, err := buildBlobObjectKeyQuery(ownerID, vaultID, blobID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var key sql.NullString
	err = q.QueryRowContext(ctx, query, args...).Scan(&key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key.String, nil
}

// discardObject removes an object no row points at. Failures only leave
// unreferenced ciphertext behind.
func (b *blobRepository) discardObject(ctx context.Context, key string) {
	if err := b.contents.DeleteObject(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "blobRepository.discardObject").
			Str("object_key", key).
			Msg("failed to delete unreferenced blob object")
	}
}

// Get returns one blob including its ciphertext or [ErrBlobNotFound].
func (b *blobRepository) Get(ctx context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlobQuery(ownerID, vaultID, blobID)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob models.VaultBlob
	var objectKey sql.NullString
	err = b.withRetry(ctx, func() error {
		return b.DB.QueryRowContext(ctx, query, args...).Scan(
			&blob.OwnerID,
			&blob.VaultID,
			&blob.BlobID,
			&blob.Nonce,
			&blob.SizeBytes,
			&blob.SHA256,
			&blob.MimeType,
			&blob.FileName,
			&blob.UpdatedAt,
			&blob.Ciphertext,
			&objectKey,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultBlob{}, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.Get").
			Str("vault_id", vaultID).
			Str("blob_id", blobID).
			Msg("failed to query blob")
		return models.VaultBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if objectKey.Valid && objectKey.String != "" {
		if b.contents == nil {
			return models.VaultBlob{}, fmt.Errorf("%w: blob %s is stored externally but no object store is configured", ErrObjectStore, blobID)
		}
		blob.Ciphertext, err = b.contents.GetObject(ctx, objectKey.String)
		if err != nil {
			return models.VaultBlob{}, err
		}
	}

	return blob, nil
}

// List returns the metadata of every blob of a vault ordered by blob id.
// Ciphertext is not loaded.
func (b *blobRepository) List(ctx context.Context, ownerID, vaultID string) ([]models.VaultBlob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlobsQuery(ownerID, vaultID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.List").
			Str("vault_id", vaultID).
			Msg("failed to execute query for listing blobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blobs := make([]models.VaultBlob, 0, 16)
	for rows.Next() {
		var blob models.VaultBlob
		scanErr := rows.Scan(
			&blob.OwnerID,
			&blob.VaultID,
			&blob.BlobID,
			&blob.Nonce,
			&blob.SizeBytes,
			&blob.SHA256,
			&blob.MimeType,
			&blob.FileName,
			&blob.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "blobRepository.List").
				Str("vault_id", vaultID).
				Msg("failed to scan blob row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		blobs = append(blobs, blob)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "blobRepository.List").
			Str("vault_id", vaultID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return blobs, nil
}

// Delete removes a blob if present and always reports the vault usage
// after the call.
func (b *blobRepository) Delete(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error) {
	log := logger.FromContext(ctx)

	var (
		result    models.DeleteBlobResult
		objectKey sql.NullString
	)
	err := b.withRetry(ctx, func() error {
		var txErr error
		result, objectKey, txErr = b.deleteTx(ctx, ownerID, vaultID, blobID)
		return txErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.Delete").
			Str("vault_id", vaultID).
			Str("blob_id", blobID).
			Msg("failed to delete blob")
		return models.DeleteBlobResult{}, err
	}

	// the row is gone; a leftover object is only wasted space
	if objectKey.Valid && objectKey.String != "" && b.contents != nil {
		if delErr := b.contents.DeleteObject(ctx, objectKey.String); delErr != nil {
			log.Warn().Err(delErr).
				Str("func", "blobRepository.Delete").
				Str("object_key", objectKey.String).
				Msg("failed to delete blob object")
		}
	}

	return result, nil
}

func (b *blobRepository) deleteTx(ctx context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, sql.NullString, error) {
	var objectKey sql.NullString

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.DeleteBlobResult{}, objectKey, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockVault, vaultLockKey(ownerID, vaultID)); err != nil {
		return models.DeleteBlobResult{}, objectKey, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err := buildDeleteBlobQuery(ownerID, vaultID, blobID)
	if err != nil {
		return models.DeleteBlobResult{}, objectKey, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted := true
	err = tx.QueryRowContext(ctx, query, args...).Scan(&objectKey)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		deleted = false
	case err != nil:
		return models.DeleteBlobResult{}, objectKey, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	used, err := b.usage(ctx, tx, ownerID, vaultID, "")
	if err != nil {
		return models.DeleteBlobResult{}, objectKey, err
	}

	if err = tx.Commit(); err != nil {
		return models.DeleteBlobResult{}, objectKey, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return models.DeleteBlobResult{Deleted: deleted, UsedBytes: used}, objectKey, nil
}

// Usage returns the current total size of a vault.
func (b *blobRepository) Usage(ctx context.Context, ownerID, vaultID string) (int64, error) {
	var used int64
	err := b.withRetry(ctx, func() error {
		var usageErr error
		used, usageErr = b.usage(ctx, b.DB.DB, ownerID, vaultID, "")
		return usageErr
	})
	return used, err
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (b *blobRepository) usage(ctx context.Context, q queryRower, ownerID, vaultID, excludeBlobID string) (int64, error) {
	query, args, err := buildBlobUsageQuery(ownerID, vaultID, excludeBlobID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var used int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&used); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return used, nil
}

func vaultLockKey(ownerID, vaultID string) string {
	return ownerID + "/" + vaultID
}

func blobObjectKey(ownerID, vaultID, blobID, version string) string {
	return url.PathEscape(ownerID) + "/" + url.PathEscape(vaultID) + "/" + url.PathEscape(blobID) + "/" + version
}

func newObjectVersion() string {
	return uuid.Must(uuid.NewV7()).String()
}
