package cli

import (
	"context"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/common"
	"github.com/alexkarpovs/lockbox/internal/passgen"
)

// Add prompts for a new credential and stores it encrypted. An empty
// secret input generates a random password instead.
func (a *App) Add(ctx context.Context) error {
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

	secretBytes, err := getPassword("Secret (leave empty to generate): ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secretBytes)

	secret := string(secretBytes)
	if secret == "" {
		secret, err = passgen.Generate(passgen.DefaultLength)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Generated a random password for this entry.")
	}

	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	category, err := getCategory(a.reader, a.out, false)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	if _, err := a.entryService.Add(ctx, a.session, website, username, secret, description, category); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Entry saved.")
	return nil
}
