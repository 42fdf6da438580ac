package catalog

import "embed"

// DataFS holds the bundled catalog and its schema
//
//go:embed data/items.json data/items.schema.json
var DataFS embed.FS
