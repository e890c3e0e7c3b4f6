package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexkarpovs/lockbox/internal/passgen"
)

// Generate produces a random password without storing anything. Works in
// both locked and unlocked state since no vault data is touched.
func (a *App) Generate(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Length (default %d)", passgen.DefaultLength), a.out)
	if err != nil {
		return err
	}

	length := passgen.DefaultLength
	if s := strings.TrimSpace(answer); s != "" {
		length, err = strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(a.out, "Not a number.")
			return nil
		}
	}

	password, err := passgen.Generate(length)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintln(a.out, password)
	a.copyToClipboard(ctx, password)
	fmt.Fprintf(a.out, "Copied to clipboard, clearing in %s.\n", a.config.ClipboardClearDelay)
	return nil
}
