package migrations

import "embed"

// FS contains embedded SQLite migrations for widget state storage.
//
//go:embed *.sql
var FS embed.FS
