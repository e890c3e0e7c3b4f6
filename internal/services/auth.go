package services

import (
	"context"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/alexkarpovs/lockbox/internal/cryptox"
	"github.com/alexkarpovs/lockbox/internal/dbx"
	"github.com/alexkarpovs/lockbox/internal/logging"
	"github.com/alexkarpovs/lockbox/internal/repositories/entries"
	"github.com/alexkarpovs/lockbox/internal/repositories/master"
	"github.com/alexkarpovs/lockbox/internal/storage"
)

const (
	// DefaultMaxAttempts is the consecutive-failure budget before the
	// vault self-destructs.
	DefaultMaxAttempts = 10

	// MinPasswordLength is the minimum master password length.
	MinPasswordLength = 12
)

// AuthService manages the master credential and the vault's lock state.
//
// Contract:
//   - HasMasterCredential: true once setup has completed.
//   - SetMasterPassword: first-run setup; refuses to replace an existing
//     credential (use ChangeMasterPassword for that).
//   - VerifyAndDeriveKey: checks the entered password and, on success,
//     returns an unlocked Session. A mismatch returns the remaining
//     attempts together with common.ErrAuthenticationFailed; exhausting
//     the budget destroys the whole vault and returns
//     common.ErrLockoutTriggered.
//   - ChangeMasterPassword: replaces the credential and atomically
//     re-encrypts every stored entry under the new key.
//   - Logout: wipes the session key.
type AuthService interface {
	HasMasterCredential(ctx context.Context) (bool, error)
	SetMasterPassword(ctx context.Context, password, confirmation string) error
	VerifyAndDeriveKey(ctx context.Context, password string) (*Session, int, error)
	ChangeMasterPassword(ctx context.Context, session *Session, current, newPassword, confirmation string) error
	Logout(session *Session)
	RemainingAttempts() int
}

type authService struct {
	store *storage.Storage
	log   logging.Logger

	// The attempt counter lives in process memory only: restarting the
	// process resets it. Availability over strict brute-force resistance
	// across restarts.
	maxAttempts int
	remaining   int
}

// NewAuthService builds an AuthService over the given vault store.
// maxAttempts <= 0 selects DefaultMaxAttempts.
func NewAuthService(store *storage.Storage, log logging.Logger, maxAttempts int) AuthService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &authService{
		store:       store,
		log:         log,
		maxAttempts: maxAttempts,
		remaining:   maxAttempts,
	}
}

func (a *authService) masterRepo() master.Repository {
	return master.NewSQLiteRepository(a.store.DB())
}

func (a *authService) HasMasterCredential(ctx context.Context) (bool, error) {
	hash, err := a.masterRepo().Get(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return hash != "", nil
}

func (a *authService) SetMasterPassword(ctx context.Context, password, confirmation string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", common.ErrWeakPassword, MinPasswordLength)
	}
	if password != confirmation {
		return fmt.Errorf("%w: confirmation does not match", common.ErrValidation)
	}

	repo := a.masterRepo()
	existing, err := repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if existing != "" {
		return common.ErrMasterExists
	}

	if err := repo.Set(ctx, cryptox.HashMasterPassword(password)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	a.log.Info(ctx, "master credential created")
	return nil
}

func (a *authService) VerifyAndDeriveKey(ctx context.Context, password string) (*Session, int, error) {
	hash, err := a.masterRepo().Get(ctx)
	if err != nil {
		return nil, a.remaining, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if hash == "" {
		return nil, a.remaining, common.ErrNoMasterCredential
	}

	ok, err := cryptox.VerifyMasterPassword(hash, password)
	if err != nil {
		return nil, a.remaining, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	if !ok {
		a.remaining--
		if a.remaining <= 0 {
			a.log.Warn(ctx, "attempt budget exhausted, destroying vault")
			if err := a.store.Destroy(); err != nil {
				return nil, 0, fmt.Errorf("%w: %w", common.ErrStorage, err)
			}
			return nil, 0, common.ErrLockoutTriggered
		}
		a.log.Warn(ctx, "failed unlock attempt", "remaining", a.remaining)
		return nil, a.remaining, common.ErrAuthenticationFailed
	}

	a.remaining = a.maxAttempts

	salt, err := cryptox.SaltFromHash(hash)
	if err != nil {
		return nil, a.remaining, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	session := newSession(cryptox.DeriveKey(password, salt))
	a.log.Info(ctx, "vault unlocked", "session_id", session.ID())
	return session, a.remaining, nil
}

// ChangeMasterPassword verifies the current password, then in a single
// transaction decrypts every stored entry under the old key, re-encrypts
// it under the key derived from the new password, and replaces the master
// hash. All-or-nothing: a failure on any record leaves the vault
// untouched. On success the open session is switched to the new key.
func (a *authService) ChangeMasterPassword(ctx context.Context, session *Session, current, newPassword, confirmation string) error {
	if !session.Active() {
		return common.ErrAuthenticationFailed
	}
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", common.ErrWeakPassword, MinPasswordLength)
	}
	if newPassword != confirmation {
		return fmt.Errorf("%w: confirmation does not match", common.ErrValidation)
	}

	hash, err := a.masterRepo().Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if hash == "" {
		return common.ErrNoMasterCredential
	}

	ok, err := cryptox.VerifyMasterPassword(hash, current)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if !ok {
		return common.ErrAuthenticationFailed
	}

	oldKey := session.Key()
	newHash := cryptox.HashMasterPassword(newPassword)
	newSalt, err := cryptox.SaltFromHash(newHash)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	newKey := cryptox.DeriveKey(newPassword, newSalt)

	err = dbx.WithTx(ctx, a.store.DB(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		entryRepo := entries.NewSQLiteRepository(tx)

		all, err := entryRepo.ListAll(ctx)
		if err != nil {
			return err
		}

		for _, e := range all {
			plaintext, err := cryptox.DecryptFromString(e.EncryptedSecret, oldKey)
			if err != nil {
				return fmt.Errorf("entry %d: %w", e.ID, err)
			}

			reEncrypted, err := cryptox.EncryptToString(plaintext, newKey)
			common.WipeByteArray(plaintext)
			if err != nil {
				return fmt.Errorf("entry %d: %w", e.ID, err)
			}

			if err := entryRepo.UpdateSecretByID(ctx, e.ID, reEncrypted); err != nil {
				return err
			}
		}

		return master.NewSQLiteRepository(tx).Set(ctx, newHash)
	})
	if err != nil {
		common.WipeByteArray(newKey)
		return fmt.Errorf("master password change aborted: %w", err)
	}

	session.rotate(newKey)
	a.log.Info(ctx, "master password changed", "session_id", session.ID())
	return nil
}

func (a *authService) Logout(session *Session) {
	if session.Active() {
		a.log.Info(context.Background(), "vault locked", "session_id", session.ID())
	}
	session.Close()
}

// RemainingAttempts reports the current attempt budget.
func (a *authService) RemainingAttempts() int {
	return a.remaining
}
