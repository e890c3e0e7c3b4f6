package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexkarpovs/lockbox/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isUnlocked() bool
	Setup(ctx context.Context) error
	Login(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Reveal(ctx context.Context) error
	Show(ctx context.Context) error
	Filter(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Generate(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Lockbox CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF, when the
// user types "exit" or "quit", or when a lockout destroys the vault.
//
// Locked:
//   - help           — show available commands
//   - setup          — create the master password (first run)
//   - login          — unlock the vault
//   - exit | quit    — leave the program
//
// Unlocked:
//   - add            — store a new credential
//   - (l)ist         — list entries with masked secrets
//   - reveal         — list entries with decrypted secrets
//   - show           — decrypt one entry and copy it to the clipboard
//   - filter         — list entries of one category
//   - edit           — update an entry
//   - delete         — remove an entry
//   - gen(erate)     — generate a random password
//   - passwd         — change the master password
//   - logout         — lock the vault
//   - exit | quit    — leave the program
//
// Command handlers report their own errors to the user; the loop only
// reacts to the terminal lockout outcome, which it returns to the
// caller. This keeps the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) error {
	for {
		printlnFn(fmt.Sprintf("lockbox %s> ", statusFn()))
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn("Available commands: add, (l)ist, reveal, show, filter, edit, delete, gen, passwd, logout, exit")
			} else {
				printlnFn("Available commands: setup, login, exit")
			}

		case "setup":
			_ = a.Setup(ctx)

		case "login":
			if err := a.Login(ctx); errors.Is(err, common.ErrLockoutTriggered) {
				return err
			}

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "reveal":
			_ = a.Reveal(ctx)

		case "show":
			_ = a.Show(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "gen", "generate":
			_ = a.Generate(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
