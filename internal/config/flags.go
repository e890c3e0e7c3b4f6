package config

import (
	"flag"
	"os"
	"time"

	"github.com/alexkarpovs/lockbox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the vault database file
//	-t int      clipboard clear delay in seconds
//	-n int      failed-unlock budget before self-destruct
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the vault database file")
	clearDelay := fs.Int("t", int(cfg.ClipboardClearDelay.Seconds()), "clipboard clear delay (in seconds)")
	fs.IntVar(&cfg.MaxLoginAttempts, "n", cfg.MaxLoginAttempts, "failed unlock attempts before vault destruction")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ClipboardClearDelay = time.Duration(*clearDelay) * time.Second
}
