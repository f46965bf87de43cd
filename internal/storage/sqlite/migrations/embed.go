package migrations

import "embed"

// FS contains embedded SQLite migrations for the task slot.
//
//go:embed *.sql
var FS embed.FS
