package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// Storages groups the server-side repositories behind the service layer.
type Storages struct {
	SnapshotRepository SnapshotRepository
	BlobRepository     BlobRepository

	db *DB
}

// NewStorages connects to postgres, applies pending migrations and wires the
// repositories. When an S3 bucket is configured blob ciphertext is kept in
// object storage.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var contents BlobContentStore
	if cfg.S3.Enabled() {
		contents, err = NewS3BlobContentStore(ctx, cfg.S3, logger)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Storages{
		SnapshotRepository: NewSnapshotRepository(db, logger),
		BlobRepository:     NewBlobRepository(db, contents, cfg.Blobs.MaxFileBytes, cfg.Blobs.MaxVaultBytes, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
