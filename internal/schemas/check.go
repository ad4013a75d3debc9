// Package schemas provides advisory JSON Schema checks for document data.
// Rendering never requires data to match a schema; the checks exist so the
// API can return shape warnings alongside a successfully stored document.
package schemas

import (
	"embed"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed defs/*.json
var defsFS embed.FS

// compiled holds one compiled schema per document kind, loaded at init.
var compiled = map[string]*gojsonschema.Schema{}

// raw holds the schema source per kind for serving through the API.
var raw = map[string][]byte{}

func init() {
	entries, err := defsFS.ReadDir("defs")
	if err != nil {
		panic(fmt.Sprintf("schemas: read embedded defs: %v", err))
	}
	for _, entry := range entries {
		name := entry.Name()
		kind := name[:len(name)-len(".json")]
		src, err := defsFS.ReadFile("defs/" + name)
		if err != nil {
			panic(fmt.Sprintf("schemas: read %s: %v", name, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(src))
		if err != nil {
			panic(fmt.Sprintf("schemas: compile %s: %v", name, err))
		}
		compiled[kind] = schema
		raw[kind] = src
	}
}

// Kinds returns the kinds that have a schema, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(compiled))
	for k := range compiled {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Raw returns the JSON Schema source for a kind, or nil when the kind has
// no schema.
func Raw(kind string) []byte {
	return raw[kind]
}

// Check validates data against the kind's schema and returns one warning
// string per mismatch. An unknown kind or unparsable data yields no
// warnings; the checks are advisory and must never block a request.
func Check(kind string, data map[string]any) []string {
	schema, ok := compiled[kind]
	if !ok {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return nil
	}

	var warnings []string
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(warnings)
	return warnings
}
