// Package migrations embeds the goose SQL migrations for the local story
// database. Migrations are additive only: a version bump may create missing
// tables and indexes but never touches data already present.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
