// Package schemas embeds the JSON Schema files describing the read model and
// the analysis payload.
package schemas

import "embed"

// Files holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	Document = "document.schema.json"
	Analysis = "analysis.schema.json"
)
