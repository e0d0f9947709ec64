package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// DB wraps a *sql.DB with the error classification and migration set of its
// backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// retryDelays are the pauses between attempts of an operation that failed
// with a [Retryable] error.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 900 * time.Millisecond}

// Migrate applies the schema of the backend the DB was opened for.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return errors.New("no migrations registered for database")
	}
	return db.migrate(db.DB)
}

// withRetry runs fn and repeats it while it fails with an error classified as
// [Retryable]. Databases without a classifier run fn once.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Dur("delay", delay).
			Msg("retryable database error, repeating operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = fn()
	}

	return err
}
