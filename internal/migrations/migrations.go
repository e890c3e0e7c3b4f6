// Package migrations embeds the goose SQL migrations that define the
// vault schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
