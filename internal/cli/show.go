package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
)

// Show looks up one credential, prints it decrypted and copies the
// secret to the clipboard. The clipboard is cleared after the configured
// delay.
func (a *App) Show(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Unlock the vault first.")
		return nil
	}

	website, err := getSimpleText(a.reader, "Website", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	item, err := a.entryService.Get(ctx, a.session, website, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No such entry.")
			return nil
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Website:     %s\n", item.Website)
	fmt.Fprintf(a.out, "Username:    %s\n", item.Username)
	fmt.Fprintf(a.out, "Secret:      %s\n", item.Secret)
	fmt.Fprintf(a.out, "Category:    %s\n", item.Category)
	if item.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", item.Description)
	}

	a.copyToClipboard(ctx, item.Secret)
	fmt.Fprintf(a.out, "Secret copied to clipboard, clearing in %s.\n", a.config.ClipboardClearDelay)
	return nil
}
