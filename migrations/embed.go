// Package migrations embeds the SQL schema so the binary can migrate itself
// without the files on disk.
package migrations

import "embed"

// FS holds one directory per SQL dialect: postgres/ and sqlite/.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
