package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/alexkarpovs/lockbox/internal/dbx"
	"github.com/alexkarpovs/lockbox/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Entry) (int64, error) {
	if e.EncryptedSecret == "" {
		return 0, fmt.Errorf("%w: encrypted secret must not be empty", common.ErrValidation)
	}

	query := `INSERT INTO entries (website, username, encrypted_password, description, category)
			VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Website, e.Username, e.EncryptedSecret, e.Description, e.Category)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted entry id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Find(ctx context.Context, website, username string) (*models.Entry, error) {
	query := `SELECT id, website, username, encrypted_password, description, category
			FROM entries WHERE website = ? AND username = ? ORDER BY id LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, website, username)

	e := &models.Entry{}
	var description sql.NullString
	err := row.Scan(&e.ID, &e.Website, &e.Username, &e.EncryptedSecret, &description, &e.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}
	e.Description = description.String
	return e, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, oldWebsite, oldUsername string, e *models.Entry) error {
	if e.EncryptedSecret == "" {
		return fmt.Errorf("%w: encrypted secret must not be empty", common.ErrValidation)
	}

	query := `UPDATE entries
			SET website = ?, username = ?, encrypted_password = ?, description = ?, category = ?
			WHERE website = ? AND username = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Website, e.Username, e.EncryptedSecret, e.Description, e.Category,
		oldWebsite, oldUsername)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateSecretByID(ctx context.Context, id int64, encryptedSecret string) error {
	if encryptedSecret == "" {
		return fmt.Errorf("%w: encrypted secret must not be empty", common.ErrValidation)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE entries SET encrypted_password = ? WHERE id = ?`, encryptedSecret, id)
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("entry %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// Delete removes matching rows. No match is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, website, username string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM entries WHERE website = ? AND username = ?`, website, username)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Entry, error) {
	return r.list(ctx, `SELECT id, website, username, encrypted_password, description, category
			FROM entries ORDER BY website ASC, id ASC`)
}

func (r *SQLiteRepository) ListByCategory(ctx context.Context, category string) ([]models.Entry, error) {
	if category == models.CategoryAll {
		return r.ListAll(ctx)
	}
	return r.list(ctx, `SELECT id, website, username, encrypted_password, description, category
			FROM entries WHERE category = ? ORDER BY website ASC, id ASC`, category)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var item models.Entry
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.Website, &item.Username,
			&item.EncryptedSecret, &description, &item.Category); err != nil {
			return nil, err
		}
		item.Description = description.String
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
