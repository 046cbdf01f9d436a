package db

import "embed"

// MigrationsFS holds the goose SQL migrations; the server applies them at
// startup.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
