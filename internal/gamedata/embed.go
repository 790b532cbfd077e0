// Package gamedata provides the embedded reference data (type chart, moves,
// species, items) and read-only registries over it.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
