// Package migrations embeds the goose migrations of the remote store
// (postgres) and of the client local cache (sqlite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// goose keeps the base FS and dialect in package globals.
var gooseMu sync.Mutex

// MigrateServer applies the remote store schema to a postgres database.
func MigrateServer(db *sql.DB) error {
	return migrate(db, serverMigrations, "server", "pgx")
}

// MigrateClient applies the local cache schema to a sqlite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientMigrations, "client", "sqlite3")
}

func migrate(db *sql.DB, fsys fs.FS, dir, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
