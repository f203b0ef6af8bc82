package migrations

import "embed"

// FS holds the schema files in lexical apply order.
//
//go:embed *.sql
var FS embed.FS
