package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/alexkarpovs/lockbox/internal/cryptox"
	"github.com/alexkarpovs/lockbox/internal/logging"
	"github.com/alexkarpovs/lockbox/internal/models"
	"github.com/alexkarpovs/lockbox/internal/repositories/entries"
	"github.com/alexkarpovs/lockbox/internal/storage"
)

// SecretMask is the fixed-length placeholder shown instead of a secret
// in listings that do not decrypt.
const SecretMask = "****************"

// EntryService is the decrypting layer between the front-end and the
// entries repository. It owns validation and the cipher calls; the
// repository below it only ever sees opaque blobs.
type EntryService interface {
	Add(ctx context.Context, session *Session, website, username, secret, description, category string) (int64, error)
	Get(ctx context.Context, session *Session, website, username string) (*models.Item, error)
	Update(ctx context.Context, session *Session, oldWebsite, oldUsername, website, username, secret, description, category string) error
	Delete(ctx context.Context, website, username string) error
	ListForDisplay(ctx context.Context) ([]models.Item, error)
	ListDecrypted(ctx context.Context, session *Session) ([]models.Item, error)
	ListByCategory(ctx context.Context, category string) ([]models.Entry, error)
}

type entryService struct {
	store *storage.Storage
	log   logging.Logger
}

func NewEntryService(store *storage.Storage, log logging.Logger) EntryService {
	return &entryService{store: store, log: log}
}

func (s *entryService) entryRepo() entries.Repository {
	return entries.NewSQLiteRepository(s.store.DB())
}

func validateFields(website, username, secret, category string) error {
	if strings.TrimSpace(website) == "" {
		return fmt.Errorf("%w: website must not be empty", common.ErrValidation)
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username must not be empty", common.ErrValidation)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret must not be empty", common.ErrValidation)
	}
	if !models.ValidCategory(category) {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}
	return nil
}

func (s *entryService) Add(ctx context.Context, session *Session, website, username, secret, description, category string) (int64, error) {
	if !session.Active() {
		return 0, common.ErrAuthenticationFailed
	}
	if err := validateFields(website, username, secret, category); err != nil {
		return 0, err
	}

	blob, err := cryptox.EncryptToString([]byte(secret), session.Key())
	if err != nil {
		return 0, err
	}

	id, err := s.entryRepo().Insert(ctx, &models.Entry{
		Website:         website,
		Username:        username,
		EncryptedSecret: blob,
		Description:     description,
		Category:        category,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	s.log.Info(ctx, "entry added", "id", id, "category", category)
	return id, nil
}

// Get finds one entry by (website, username) and decrypts its secret.
// A decryption failure here is surfaced to the caller: for a single
// requested record it means data loss, not something to paper over.
func (s *entryService) Get(ctx context.Context, session *Session, website, username string) (*models.Item, error) {
	if !session.Active() {
		return nil, common.ErrAuthenticationFailed
	}

	e, err := s.entryRepo().Find(ctx, website, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if e == nil {
		return nil, common.ErrNotFound
	}

	plaintext, err := cryptox.DecryptFromString(e.EncryptedSecret, session.Key())
	if err != nil {
		return nil, err
	}

	return &models.Item{
		Website:     e.Website,
		Username:    e.Username,
		Secret:      string(plaintext),
		Description: e.Description,
		Category:    e.Category,
	}, nil
}

// Update re-encrypts the new secret with a fresh IV and rewrites every
// row matching (oldWebsite, oldUsername). The store never re-encrypts on
// its own: the ciphertext is always produced here.
func (s *entryService) Update(ctx context.Context, session *Session, oldWebsite, oldUsername, website, username, secret, description, category string) error {
	if !session.Active() {
		return common.ErrAuthenticationFailed
	}
	if err := validateFields(website, username, secret, category); err != nil {
		return err
	}

	blob, err := cryptox.EncryptToString([]byte(secret), session.Key())
	if err != nil {
		return err
	}

	err = s.entryRepo().Update(ctx, oldWebsite, oldUsername, &models.Entry{
		Website:         website,
		Username:        username,
		EncryptedSecret: blob,
		Description:     description,
		Category:        category,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	s.log.Info(ctx, "entry updated", "website", website)
	return nil
}

func (s *entryService) Delete(ctx context.Context, website, username string) error {
	if err := s.entryRepo().Delete(ctx, website, username); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	s.log.Info(ctx, "entry deleted", "website", website)
	return nil
}

// ListForDisplay lists entries with the secret replaced by SecretMask.
// No key and no decryption involved, so it works while a listing surface
// only needs shape, not secrets.
func (s *entryService) ListForDisplay(ctx context.Context) ([]models.Item, error) {
	rows, err := s.entryRepo().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	result := make([]models.Item, 0, len(rows))
	for _, e := range rows {
		result = append(result, models.Item{
			Website:     e.Website,
			Username:    e.Username,
			Secret:      SecretMask,
			Description: e.Description,
			Category:    e.Category,
		})
	}
	return result, nil
}

// ListDecrypted decrypts every entry under the session key. A record
// that fails to decrypt degrades to an empty secret instead of aborting
// the listing: one corrupted record must not block the rest of the vault.
func (s *entryService) ListDecrypted(ctx context.Context, session *Session) ([]models.Item, error) {
	if !session.Active() {
		return nil, common.ErrAuthenticationFailed
	}

	rows, err := s.entryRepo().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	result := make([]models.Item, 0, len(rows))
	for _, e := range rows {
		secret := ""
		plaintext, err := cryptox.DecryptFromString(e.EncryptedSecret, session.Key())
		if err != nil {
			s.log.Warn(ctx, "failed to decrypt entry, returning placeholder", "id", e.ID)
		} else {
			secret = string(plaintext)
		}

		result = append(result, models.Item{
			Website:     e.Website,
			Username:    e.Username,
			Secret:      secret,
			Description: e.Description,
			Category:    e.Category,
		})
	}
	return result, nil
}

// ListByCategory returns raw, still-encrypted records for the given
// category; models.CategoryAll returns everything, ordered by website.
func (s *entryService) ListByCategory(ctx context.Context, category string) ([]models.Entry, error) {
	if category != models.CategoryAll && !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}

	rows, err := s.entryRepo().ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return rows, nil
}
