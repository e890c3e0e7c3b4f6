package cli

import (
	"context"
	"fmt"

	"github.com/alexkarpovs/lockbox/internal/models"
	"github.com/alexkarpovs/lockbox/internal/services"
)

func (a *App) printItems(items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "The vault is empty.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "%-30s %-20s %-20s %-16s %s\n",
			item.Website, item.Username, item.Secret, item.Category, item.Description)
	}
}

// List shows all entries with masked secrets. No decryption involved.
func (a *App) List(ctx context.Context) error {
	items, err := a.entryService.ListForDisplay(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	a.printItems(items)
	return nil
}

// Reveal shows all entries with decrypted secrets. A record that cannot
// be decrypted is listed with an empty secret.
func (a *App) Reveal(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Unlock the vault first.")
		return nil
	}

	items, err := a.entryService.ListDecrypted(ctx, a.session)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	a.printItems(items)
	return nil
}

// Filter lists the entries of one category (or all of them), secrets
// masked.
func (a *App) Filter(ctx context.Context) error {
	category, err := getCategory(a.reader, a.out, true)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	rows, err := a.entryService.ListByCategory(ctx, category)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	items := make([]models.Item, 0, len(rows))
	for _, e := range rows {
		items = append(items, models.Item{
			Website:     e.Website,
			Username:    e.Username,
			Secret:      services.SecretMask,
			Description: e.Description,
			Category:    e.Category,
		})
	}
	a.printItems(items)
	return nil
}
