package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
)

// getSimpleText, getPassword, and getCategory are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getCategory = GetCategory

// Setup captures a new master password with confirmation and creates the
// master credential. Used on first run only: an existing credential is
// never replaced here (that is what ChangePassword is for).
func (a *App) Setup(ctx context.Context) error {
	password, err := getPassword("Create master password (at least 12 characters): ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Confirm master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	err = a.authService.SetMasterPassword(ctx, string(password), string(confirmation))
	switch {
	case errors.Is(err, common.ErrWeakPassword):
		fmt.Fprintln(a.out, "Password is too short: at least 12 characters required.")
		return err
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Passwords do not match.")
		return err
	case errors.Is(err, common.ErrMasterExists):
		fmt.Fprintln(a.out, "A master password already exists. Use 'passwd' to change it.")
		return err
	case err != nil:
		a.log.Error(ctx, "error creating master credential", "err", err)
		return err
	}

	fmt.Fprintln(a.out, "Master password created. Use 'login' to unlock the vault.")
	return nil
}

// Login verifies the entered master password. On success it keeps the
// unlocked session; on a mismatch it reports the remaining attempts; a
// lockout is printed unambiguously and propagated so the shell ends.
func (a *App) Login(ctx context.Context) error {
	if a.isUnlocked() {
		fmt.Fprintln(a.out, "Vault is already unlocked.")
		return nil
	}

	password, err := getPassword("Enter master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, remaining, err := a.authService.VerifyAndDeriveKey(ctx, string(password))
	switch {
	case errors.Is(err, common.ErrAuthenticationFailed):
		fmt.Fprintf(a.out, "Incorrect password! %d attempts left.\n", remaining)
		return nil
	case errors.Is(err, common.ErrLockoutTriggered):
		fmt.Fprintln(a.out, "Too many failed attempts! The vault and all stored data have been destroyed.")
		return err
	case errors.Is(err, common.ErrNoMasterCredential):
		fmt.Fprintln(a.out, "No master password set. Run 'setup' first.")
		return nil
	case err != nil:
		a.log.Error(ctx, "error verifying master password", "err", err)
		return err
	}

	a.session = session
	fmt.Fprintln(a.out, "Vault unlocked.")
	return nil
}

// Logout locks the vault, wiping the session key.
func (a *App) Logout(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Vault is not unlocked.")
		return nil
	}

	a.authService.Logout(a.session)
	a.session = nil
	fmt.Fprintln(a.out, "Vault locked.")
	return nil
}

// ChangePassword replaces the master password, re-encrypting every
// stored entry under the new key in one atomic migration.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Unlock the vault first.")
		return nil
	}

	current, err := getPassword("Current master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword("New master password (at least 12 characters): ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirmation, err := getPassword("Confirm new master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	err = a.authService.ChangeMasterPassword(ctx, a.session,
		string(current), string(newPassword), string(confirmation))
	switch {
	case errors.Is(err, common.ErrAuthenticationFailed):
		fmt.Fprintln(a.out, "Current password is incorrect.")
		return err
	case errors.Is(err, common.ErrWeakPassword):
		fmt.Fprintln(a.out, "New password is too short: at least 12 characters required.")
		return err
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Passwords do not match.")
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Master password change failed; nothing was modified.")
		a.log.Error(ctx, "error changing master password", "err", err)
		return err
	}

	fmt.Fprintln(a.out, "Master password changed. All entries were re-encrypted.")
	return nil
}
