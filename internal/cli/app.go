// Package cli implements the interactive Lockbox shell: first-run setup,
// unlock with lockout reporting, and the credential commands. It is the
// only layer that talks to the user; it never touches the cipher engine
// or raw storage directly, only the services.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/alexkarpovs/lockbox/internal/config"
	"github.com/alexkarpovs/lockbox/internal/logging"
	"github.com/alexkarpovs/lockbox/internal/services"
	"github.com/alexkarpovs/lockbox/internal/storage"
	"github.com/atotto/clipboard"

	_ "modernc.org/sqlite"
)

// clipboardWrite is a test seam for clipboard access.
var clipboardWrite = clipboard.WriteAll

type App struct {
	config       *config.Config
	log          logging.Logger
	store        *storage.Storage
	authService  services.AuthService
	entryService services.EntryService
	session      *services.Session
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error opening vault", "err", err)
		return nil, err
	}

	return &App{
		config:       c,
		log:          log,
		store:        store,
		authService:  services.NewAuthService(store, log, c.MaxLoginAttempts),
		entryService: services.NewEntryService(store, log),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run drives the shell until the user exits or the vault self-destructs.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.session.Close()
		_ = a.store.Close()
	}()
	return a.Root(ctx)
}

func (a *App) isUnlocked() bool {
	return a.session.Active()
}

// copyToClipboard puts secret on the clipboard and schedules a clear so
// it does not linger there indefinitely.
func (a *App) copyToClipboard(ctx context.Context, secret string) {
	if err := clipboardWrite(secret); err != nil {
		a.log.Warn(ctx, "clipboard unavailable", "err", err)
		return
	}
	time.AfterFunc(a.config.ClipboardClearDelay, func() {
		_ = clipboardWrite("")
	})
}
