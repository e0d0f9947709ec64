package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// snapshotRepository is the PostgreSQL-backed implementation of
// [SnapshotRepository] over the "vault_snapshots" table.
//
// Push is a single conditional upsert, so concurrent writers of the same
// (owner, vault) are ordered by postgres row locking and the stored revision
// never decreases.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// Pull returns the snapshot of one vault or [ErrSnapshotNotFound].
func (s *snapshotRepository) Pull(ctx context.Context, ownerID, vaultID string) (models.VaultSnapshot, error) {
	query, args, err := buildPullSnapshotQuery(ownerID, vaultID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.pullOne(ctx, "snapshotRepository.Pull", query, args)
}

// PullByOwner returns the most recently updated snapshot across all vaults
// of ownerID.
func (s *snapshotRepository) PullByOwner(ctx context.Context, ownerID string) (models.VaultSnapshot, error) {
	query, args, err := buildPullByOwnerQuery(ownerID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.pullOne(ctx, "snapshotRepository.PullByOwner", query, args)
}

// PullByLegacyUserPrefix returns the most recently updated snapshot whose
// owner key was written in the deprecated "user:<userID>|<session>" format.
func (s *snapshotRepository) PullByLegacyUserPrefix(ctx context.Context, userID string) (models.VaultSnapshot, error) {
	query, args, err := buildPullByLegacyPrefixQuery(userID)
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.pullOne(ctx, "snapshotRepository.PullByLegacyUserPrefix", query, args)
}

// Push stores req when no snapshot exists yet or when req.Revision is
// strictly greater than the stored revision. A rejected push changes nothing
// and is reported through [models.PushResult.Accepted], not as an error.
func (s *snapshotRepository) Push(ctx context.Context, req models.PushRequest) (models.PushResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPushSnapshotQuery(req)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = s.withRetry(ctx, func() error {
		res, execErr := s.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		// two first pushes raced on the primary key; the loser is stale
		if isUniqueViolation(err) {
			log.Debug().
				Str("func", "snapshotRepository.Push").
				Str("vault_id", req.VaultID).
				Int64("revision", req.Revision).
				Msg("first push lost a race, rejecting")
			return models.PushResult{Accepted: false}, nil
		}
		log.Err(err).
			Str("func", "snapshotRepository.Push").
			Str("vault_id", req.VaultID).
			Int64("revision", req.Revision).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute snapshot push")
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.PushResult{Accepted: affected > 0}, nil
}

func (s *snapshotRepository) pullOne(ctx context.Context, funcName, query string, args []any) (models.VaultSnapshot, error) {
	log := logger.FromContext(ctx)

	var snapshot models.VaultSnapshot
	err := s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(
			&snapshot.OwnerID,
			&snapshot.VaultID,
			&snapshot.Revision,
			&snapshot.EncryptedFile,
			&snapshot.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("pg_code", postgresError(err)).
			Msg("failed to query snapshot")
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}
