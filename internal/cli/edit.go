package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
)

// Edit replaces an existing credential. The entry is addressed by its
// current (website, username) pair; every field including the secret is
// prompted anew and the secret is re-encrypted with a fresh IV.
func (a *App) Edit(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Unlock the vault first.")
		return nil
	}

	oldWebsite, err := getSimpleText(a.reader, "Website of the entry to edit", a.out)
	if err != nil {
		return err
	}
	oldUsername, err := getSimpleText(a.reader, "Username of the entry to edit", a.out)
	if err != nil {
		return err
	}

	website, err := getSimpleText(a.reader, "New website", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}

	secretBytes, err := getPassword("New secret: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secretBytes)

	description, err := getSimpleText(a.reader, "New description (optional)", a.out)
	if err != nil {
		return err
	}

	category, err := getCategory(a.reader, a.out, false)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	err = a.entryService.Update(ctx, a.session, oldWebsite, oldUsername,
		website, username, string(secretBytes), description, category)
	if err != nil {
		if errors.Is(err, common.ErrValidation) || errors.Is(err, common.ErrUnknownCategory) {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return nil
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Entry updated.")
	return nil
}
