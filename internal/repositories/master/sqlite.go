package master

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM master WHERE id = 1`).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get master hash: %w", err)
	}
	return hash, nil
}

// Set upserts the single row. The fixed id keeps the record a singleton
// at the schema level.
func (r *SQLiteRepository) Set(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO master (id, password_hash) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET password_hash = excluded.password_hash
	`, hash)
	if err != nil {
		return fmt.Errorf("failed to set master hash: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM master`)
	if err != nil {
		return fmt.Errorf("failed to clear master hash: %w", err)
	}
	return nil
}
