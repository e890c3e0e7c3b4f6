// Package entries persists encrypted credential records. The repository
// stores and returns opaque blobs; it never holds a key and never
// encrypts or decrypts anything.
package entries

import (
	"context"

	"github.com/alexkarpovs/lockbox/internal/models"
)

// Repository describes CRUD and query operations for credential entries.
//
// Entries are logically addressed by the (website, username) pair. The
// schema does not enforce uniqueness on that pair: Update and Delete
// affect every matching row, Find returns the first match by id.
type Repository interface {
	// Insert stores a new entry and returns its assigned id. An entry
	// with an empty encrypted blob is rejected before any persistence.
	Insert(ctx context.Context, e *models.Entry) (int64, error)

	// Find returns the first entry matching (website, username), still
	// encrypted, or nil when there is no match.
	Find(ctx context.Context, website, username string) (*models.Entry, error)

	// Update rewrites all fields of every row matching
	// (oldWebsite, oldUsername). The blob must already be a fresh
	// ciphertext; the repository persists what it is given.
	Update(ctx context.Context, oldWebsite, oldUsername string, e *models.Entry) error

	// UpdateSecretByID replaces only the encrypted blob of one row.
	// Used by the master-password re-encryption migration.
	UpdateSecretByID(ctx context.Context, id int64, encryptedSecret string) error

	// Delete removes every row matching (website, username). Deleting a
	// non-existent pair is a no-op.
	Delete(ctx context.Context, website, username string) error

	// ListAll returns every entry ordered by website, then id.
	ListAll(ctx context.Context) ([]models.Entry, error)

	// ListByCategory filters by exact category match, same ordering.
	// models.CategoryAll returns everything.
	ListByCategory(ctx context.Context, category string) ([]models.Entry, error)
}
