// Package migrations embeds the SQL migrations of the addresses table.
package migrations

import "embed"

// MigrationsFS holds the goose migration files.
//
//go:embed *.sql
var MigrationsFS embed.FS
