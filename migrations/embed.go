// Package migrations embeds the SQL schema migrations so the goose
// programmatic API can apply them without a filesystem path at runtime.
package migrations

import "embed"

// FS holds every *.sql migration, embedded at compile time. Integration
// tests hand it to a goose provider to build and tear down the schema.
//
//go:embed *.sql
var FS embed.FS
