// Package storage owns the vault's SQLite database: opening it, applying
// schema migrations, and the irreversible destruction path used by the
// lockout policy.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexkarpovs/lockbox/internal/filex"
	"github.com/alexkarpovs/lockbox/internal/migrations"
	"github.com/pressly/goose/v3"
)

// Storage wraps the database handle together with the file path, so the
// lockout path can remove the vault from disk.
type Storage struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the vault database at path and
// applies pending migrations. Safe to call on every startup: migrations
// are idempotent.
func Open(ctx context.Context, path string) (*Storage, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare vault directory: %w", err)
	}

	db, err := sql.Open("sqlite", abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate vault database: %w", err)
	}

	return &Storage{db: db, path: abs}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// DB exposes the handle for repositories and transactions.
func (s *Storage) DB() *sql.DB {
	return s.db
}

// Path returns the absolute path of the vault file.
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Destroy permanently deletes the entire vault: it closes the handle and
// removes the database file plus any journal side files. There is no
// undo. A partial failure is reported, never swallowed; the caller must
// treat any returned error as "vault state unknown".
func (s *Storage) Destroy() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close vault before destruction: %w", err)
	}

	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("failed to remove vault file: %w", err)
	}

	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(s.path + suffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove vault side file: %w", err)
		}
	}

	return nil
}
