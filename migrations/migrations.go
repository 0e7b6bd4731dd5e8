// Package migrations embeds the SQL migrations for the urls table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
