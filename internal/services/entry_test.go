package services

import (
	"context"
	"testing"

	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/alexkarpovs/lockbox/internal/models"
	"github.com/alexkarpovs/lockbox/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupUnlocked(t *testing.T) (EntryService, *Session, *storage.Storage) {
	t.Helper()
	store := setupStore(t)
	log := testLogger()
	auth := NewAuthService(store, log, DefaultMaxAttempts)
	ctx := context.Background()

	require.NoError(t, auth.SetMasterPassword(ctx, goodPassword, goodPassword))
	session, _, err := auth.VerifyAndDeriveKey(ctx, goodPassword)
	require.NoError(t, err)

	return NewEntryService(store, log), session, store
}

func TestAdd_ThenListForDisplayAndDecrypted(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	ctx := context.Background()

	id, err := svc.Add(ctx, session, "example.com", "alice", "s3cr3t", "personal", "Social Media")
	require.NoError(t, err)
	assert.Positive(t, id)

	display, err := svc.ListForDisplay(ctx)
	require.NoError(t, err)
	require.Len(t, display, 1)
	assert.Equal(t, "example.com", display[0].Website)
	assert.Equal(t, "alice", display[0].Username)
	assert.Equal(t, SecretMask, display[0].Secret, "display listing must mask the secret")
	assert.Equal(t, "personal", display[0].Description)
	assert.Equal(t, "Social Media", display[0].Category)

	decrypted, err := svc.ListDecrypted(ctx, session)
	require.NoError(t, err)
	require.Len(t, decrypted, 1)
	assert.Equal(t, "s3cr3t", decrypted[0].Secret)
}

func TestAdd_StoresNoPlaintext(t *testing.T) {
	svc, session, store := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "example.com", "alice", "sup3rs3cr3t", "", "Work")
	require.NoError(t, err)

	var blob string
	require.NoError(t, store.DB().QueryRow(`SELECT encrypted_password FROM entries`).Scan(&blob))
	assert.NotContains(t, blob, "sup3rs3cr3t")
	assert.NotEmpty(t, blob)
}

func TestAdd_Validation(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	ctx := context.Background()

	tests := []struct {
		name                                string
		website, username, secret, category string
		wantErr                             error
	}{
		{"empty website", "", "alice", "s", "Work", common.ErrValidation},
		{"blank website", "   ", "alice", "s", "Work", common.ErrValidation},
		{"empty username", "example.com", "", "s", "Work", common.ErrValidation},
		{"empty secret", "example.com", "alice", "", "Work", common.ErrValidation},
		{"unknown category", "example.com", "alice", "s", "Gaming", common.ErrUnknownCategory},
		{"All is not storable", "example.com", "alice", "s", models.CategoryAll, common.ErrUnknownCategory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, session, tc.website, tc.username, tc.secret, "", tc.category)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	display, err := svc.ListForDisplay(ctx)
	require.NoError(t, err)
	assert.Empty(t, display, "rejected input must not be persisted")
}

func TestAdd_RequiresActiveSession(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	session.Close()

	_, err := svc.Add(context.Background(), session, "example.com", "alice", "s", "", "Work")
	require.ErrorIs(t, err, common.ErrAuthenticationFailed)
}

func TestGet_DecryptsOnDemand(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "example.com", "alice", "s3cr3t", "personal", "Social Media")
	require.NoError(t, err)

	item, err := svc.Get(ctx, session, "example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", item.Secret)

	_, err = svc.Get(ctx, session, "example.com", "bob")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_ChangeCategoryScenario(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "example.com", "alice", "s3cr3t", "personal", "Social Media")
	require.NoError(t, err)

	err = svc.Update(ctx, session, "example.com", "alice",
		"example.com", "alice", "s3cr3t", "personal", "Work")
	require.NoError(t, err)

	work, err := svc.ListByCategory(ctx, "Work")
	require.NoError(t, err)
	require.Len(t, work, 1)
	assert.Equal(t, "example.com", work[0].Website)

	social, err := svc.ListByCategory(ctx, "Social Media")
	require.NoError(t, err)
	assert.Empty(t, social)
}

func TestUpdate_ProducesFreshCiphertext(t *testing.T) {
	svc, session, store := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "example.com", "alice", "s3cr3t", "", "Work")
	require.NoError(t, err)

	var before string
	require.NoError(t, store.DB().QueryRow(`SELECT encrypted_password FROM entries`).Scan(&before))

	// same secret, but a fresh IV means a different blob
	err = svc.Update(ctx, session, "example.com", "alice",
		"example.com", "alice", "s3cr3t", "", "Work")
	require.NoError(t, err)

	var after string
	require.NoError(t, store.DB().QueryRow(`SELECT encrypted_password FROM entries`).Scan(&after))
	assert.NotEqual(t, before, after)
}

func TestDelete_ThenFindReturnsNone(t *testing.T) {
	svc, session, _ := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "example.com", "alice", "s3cr3t", "", "Work")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "example.com", "alice"))

	_, err = svc.Get(ctx, session, "example.com", "alice")
	require.ErrorIs(t, err, common.ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, svc.Delete(ctx, "example.com", "alice"))
}

func TestListDecrypted_CorruptRecordDegradesInIsolation(t *testing.T) {
	svc, session, store := setupUnlocked(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, session, "alpha.com", "alice", "alpha-secret", "", "Work")
	require.NoError(t, err)
	_, err = svc.Add(ctx, session, "beta.com", "bob", "beta-secret", "", "Work")
	require.NoError(t, err)

	_, err = store.DB().Exec(
		`UPDATE entries SET encrypted_password = 'Z2FyYmFnZQ==' WHERE website = 'alpha.com'`)
	require.NoError(t, err)

	items, err := svc.ListDecrypted(ctx, session)
	require.NoError(t, err, "one bad record must not abort the listing")
	require.Len(t, items, 2)
	assert.Equal(t, "", items[0].Secret, "corrupted record degrades to empty")
	assert.Equal(t, "beta-secret", items[1].Secret, "healthy record is unaffected")
}

func TestListByCategory_RejectsUnknownFilter(t *testing.T) {
	svc, _, _ := setupUnlocked(t)

	_, err := svc.ListByCategory(context.Background(), "Gaming")
	require.ErrorIs(t, err, common.ErrUnknownCategory)
}
