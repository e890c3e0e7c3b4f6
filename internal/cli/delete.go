package cli

import (
	"context"
	"fmt"
	"strings"
)

// Delete removes every entry matching a (website, username) pair after a
// confirmation prompt. Deleting a pair that does not exist is not an
// error.
func (a *App) Delete(ctx context.Context) error {
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

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s / %s? (y/N)", website, username), a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.entryService.Delete(ctx, website, username); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Entry deleted.")
	return nil
}
