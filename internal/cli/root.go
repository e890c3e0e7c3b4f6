package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) status() string {
	if a.isUnlocked() {
		return "(unlocked)"
	}
	return "(locked)"
}

// Root is the shell entry point: it decides between first-run setup and
// the unlock prompt, then hands control to the REPL.
func (a *App) Root(ctx context.Context) error {
	fmt.Fprintln(a.out, "Lockbox (type 'help' for commands)")

	has, err := a.authService.HasMasterCredential(ctx)
	if err != nil {
		a.log.Error(ctx, "error checking master credential", "err", err)
		return err
	}

	if !has {
		fmt.Fprintln(a.out, "No vault found. Let's create your master password.")
		if err := a.Setup(ctx); err != nil {
			a.log.Error(ctx, "setup aborted", "err", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	return runREPL(ctx, a, a.status, scanner)
}
