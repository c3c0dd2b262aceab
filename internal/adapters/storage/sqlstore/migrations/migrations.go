// Package migrations embeds the SQL schema for each supported dialect.
package migrations

import "embed"

// FS holds one directory of ordered .sql files per dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
