package migrations

import "embed"

// FS embeds the SQL migration files.
//
//go:embed sqlite/*.sql
var FS embed.FS
