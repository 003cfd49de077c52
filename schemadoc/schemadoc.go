// Package schemadoc loads and validates GraphQL schema documents.
//
// It is the generator's only contact point with the GraphQL parser
// (github.com/vektah/gqlparser/v2): everything downstream of Parse/Load works
// against the already-validated *ast.Schema plus the original, source-ordered
// *ast.SchemaDocument.
package schemadoc

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// Document bundles the source-ordered parse tree with its validated, merged
// schema. DocumentEmitter iterates the former for stable emission order; the
// latter supplies resolved root operation types and type lookups by name.
type Document struct {
	// Definitions lists type definitions in source order, the order
	// DocumentEmitter iterates.
	Definitions ast.DefinitionList
	// Schema is the validated, merged schema: root operation types,
	// Implements (interface -> implementors), PossibleTypes (abstract type
	// -> concrete members).
	Schema *ast.Schema
}

// Parse parses and validates a single schema source blob.
func Parse(src, filename string) (*Document, error) {
	return ParseSources([]*ast.Source{{Input: src, Name: filename}})
}

// Load reads and parses a schema from a file on disk.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	return Parse(string(content), path)
}

// LoadFiles reads and merges several schema files, in the order given. A
// schema split across files (e.g. a `schema { ... }` block in one file and
// its types in another) parses as a single document this way.
func LoadFiles(paths []string) (*Document, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", path, err)
		}
		sources = append(sources, &ast.Source{Input: string(content), Name: path})
	}

	return ParseSources(sources)
}

// ParseSources parses and validates several already-read schema sources,
// merging them into one document. Callers that read schema files through a
// filesystem abstraction other than the OS (e.g. afero, for testing) build
// the []*ast.Source themselves and call this instead of LoadFiles.
func ParseSources(sources []*ast.Source) (*Document, error) {
	parsed, err := parser.ParseSchemas(append([]*ast.Source{validator.Prelude}, sources...)...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	schema, err := validator.ValidateSchemaDocument(parsed)
	if err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}

	// The built-in scalars, directives and introspection types come from the
	// prelude; only the caller's own definitions are emitted.
	var defs ast.DefinitionList
	for _, def := range parsed.Definitions {
		if !def.BuiltIn {
			defs = append(defs, def)
		}
	}

	return &Document{Definitions: defs, Schema: schema}, nil
}

// Implementors returns the types implementing iface, in the source order
// they were declared in the document, found by scanning Definitions rather
// than the validated schema's maps.
func (d *Document) Implementors(iface *ast.Definition) ast.DefinitionList {
	var out ast.DefinitionList
	for _, def := range d.Definitions {
		if def.Kind != ast.Object {
			continue
		}
		for _, name := range def.Interfaces {
			if name == iface.Name {
				out = append(out, def)
				break
			}
		}
	}
	return out
}

// UnionMembers returns the member types of a union, in source order.
func (d *Document) UnionMembers(union *ast.Definition) ast.DefinitionList {
	byName := make(map[string]*ast.Definition, len(union.Types))
	for _, def := range d.Definitions {
		if def.Kind == ast.Object {
			byName[def.Name] = def
		}
	}

	var out ast.DefinitionList
	for _, name := range union.Types {
		if def, ok := byName[name]; ok {
			out = append(out, def)
		}
	}
	return out
}
