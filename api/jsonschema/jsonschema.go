// Package jsonschema request body schemas, schema id is "<module>/<operation>"
package jsonschema

import "embed"

// FS embedded schema files
//
//go:embed */*.json
var FS embed.FS
