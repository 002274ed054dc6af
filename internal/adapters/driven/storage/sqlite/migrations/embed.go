// Package migrations holds the numbered schema scripts for the SQLite store.
// Files are named NNN_name.up.sql and NNN_name.down.sql; only up scripts are
// applied, in version order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
