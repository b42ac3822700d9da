// Package migrations embeds the versioned SQL schema applied by cmd/migrate
// and the server's optional auto-migrate step.
package migrations

import "embed"

// FS holds every *.sql migration in this directory
//
//go:embed *.sql
var FS embed.FS
