// Package migrations holds the goose SQL migrations for the statistics database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
