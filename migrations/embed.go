// Package migrations embeds the goose migrations for each store driver.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directories inside FS, one per dialect
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
