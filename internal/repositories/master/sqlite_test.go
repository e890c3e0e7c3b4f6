package master

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE master (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  password_hash TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_EmptyWhenUnset(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	hash, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", hash)
}

func TestSetGet_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "pbkdf2-sha256$100000$salt$digest"))

	hash, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pbkdf2-sha256$100000$salt$digest", hash)
}

func TestSet_ReplacesExistingRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "first"))
	require.NoError(t, r.Set(ctx, "second"))

	hash, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", hash)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM master`).Scan(&n))
	assert.Equal(t, 1, n, "master credential must stay a singleton")
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "hash"))
	require.NoError(t, r.Clear(ctx))

	hash, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", hash)
}
