package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// LocalBlobRepository caches encrypted attachments in sqlite.
	LocalBlobRepository LocalBlobRepository

	// BlobTombstoneRepository queues remote blob deletes.
	BlobTombstoneRepository BlobTombstoneRepository

	// VaultStateRepository remembers the active storage mode.
	VaultStateRepository VaultStateRepository

	// SnapshotCacheRepository holds the TTL-bound cached vault file.
	SnapshotCacheRepository SnapshotCacheRepository

	// VaultFileStorage holds the durable vault file.
	VaultFileStorage VaultFileStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the sqlite repositories and the durable file storage in cfg.VaultDir.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalBlobRepository:     NewLocalBlobRepository(db, logger),
		BlobTombstoneRepository: NewBlobTombstoneRepository(db, logger),
		VaultStateRepository:    NewVaultStateRepository(db, logger),
		SnapshotCacheRepository: NewSnapshotCacheRepository(db, logger),
		VaultFileStorage:        NewVaultFileStorage(cfg.VaultDir, logger),
		db:                      db,
	}, nil
}

// Close releases the sqlite connection.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
