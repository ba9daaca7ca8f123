// Package migrations embeds the catalog schema and seed data for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
