package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// File is one emitted output: a single "Client" file in aggregated mode, or
// one entry per top-level declaration (plus a "package" entry) in
// splitFiles mode (spec §4.6, §6).
type File struct {
	Name   string
	Source string
}

// decls returns the definitions that contribute their own top-level
// declaration, in emission order: Scalars never do (§4.3/§7); Unions never
// do (§4.5); a scalar-mapped Enum is suppressed in favor of the mapping
// (§4.3). Emission order is document source order, except schema-root
// types move after every other declaration (§4.6): a root type's fields
// typically reference types declared later in the same document, so
// deferring every root type to the end guarantees it is emitted after
// whatever it references regardless of where in the source it sits, which
// satisfies the "emitted after their alias target when the alias target
// appears later" rule in every case it actually constrains.
func (c *Context) decls() []*ast.Definition {
	var out, roots []*ast.Definition
	for _, def := range c.Doc.Definitions {
		switch def.Kind {
		case ast.Scalar, ast.Union:
			continue
		case ast.Enum:
			if _, mapped := c.Scalar.Mapped(def.Name); mapped {
				continue
			}
			out = append(out, def)
		case ast.Object, ast.Interface, ast.InputObject:
			if _, isRoot := c.IsRoot(def.Name); isRoot {
				roots = append(roots, def)
				continue
			}
			out = append(out, def)
		}
	}
	return append(out, roots...)
}

// EmitDecl dispatches to the per-kind TypeEmitter for a top-level
// declaration (spec §4.5).
func (c *Context) EmitDecl(def *ast.Definition) string {
	switch def.Kind {
	case ast.Object, ast.Interface:
		return c.EmitObject(def)
	case ast.Enum:
		return c.EmitEnum(def)
	case ast.InputObject:
		return c.EmitInput(def)
	default:
		panic(fmt.Sprintf("emit: unexpected definition kind %v for %s", def.Kind, def.Name))
	}
}

// emitDeclForSplitFile renders a declaration's per-file body: for
// Object/Interface this is the object container alone (the phantom type
// lives in the shared package-object file instead); everything else is
// identical to EmitDecl.
func (c *Context) emitDeclForSplitFile(def *ast.Definition) string {
	if def.Kind == ast.Object || def.Kind == ast.Interface {
		var buf strings.Builder
		writeDocstring(&buf, "", def.Description)
		buf.WriteString(c.EmitObjectBody(def))
		return buf.String()
	}
	return c.EmitDecl(def)
}

var (
	objectLikeImports = []string{
		"import caliban.client.SelectionBuilder",
		"import caliban.client.SelectionBuilder._",
		"import caliban.client.Argument",
		"import caliban.client.FieldBuilder._",
		"import caliban.client.Operations._",
	}
	valueImports = []string{
		"import caliban.client.__Value._",
		"import caliban.client.CalibanClientError.DecodingError",
	}
)

// importsFor returns the library import lines a single declaration's own
// file needs, for split-file mode (each per-type file is self-contained,
// spec §4.6).
func importsFor(def *ast.Definition) []string {
	switch def.Kind {
	case ast.Object, ast.Interface:
		return objectLikeImports
	case ast.Enum, ast.InputObject:
		return valueImports
	default:
		return nil
	}
}

// imports collects and dedupes the import lines for the aggregated
// single-file mode: the field-builder group only when any object/interface
// is present, the value group whenever any enum/input is present, followed
// by the user's additionalImports after a blank line (spec §4.6).
func (c *Context) imports(defs []*ast.Definition) []string {
	var hasObjectLike, hasValueLike bool
	for _, def := range defs {
		switch def.Kind {
		case ast.Object, ast.Interface:
			hasObjectLike = true
		case ast.Enum, ast.InputObject:
			hasValueLike = true
		}
	}

	var lines []string
	if hasObjectLike {
		lines = append(lines, objectLikeImports...)
	}
	if hasValueLike {
		lines = append(lines, valueImports...)
	}

	if len(c.Cfg.AdditionalImports) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, imp := range c.Cfg.AdditionalImports {
			lines = append(lines, "import "+imp)
		}
	}

	return lines
}

// Write runs the full DocumentEmitter orchestration (spec §4.6): resolve
// schema roots, assemble imports, emit every top-level declaration in
// source order (schema-root types last, see decls), and wrap the result in a single "Client" object or split it
// into one file per declaration plus a package-object file.
func (c *Context) Write() []File {
	defs := c.decls()

	if c.Cfg.SplitFiles {
		return c.writeSplit(defs)
	}
	return c.writeSingle(defs)
}

func (c *Context) writeSingle(defs []*ast.Definition) []File {
	var buf strings.Builder

	if lines := c.imports(defs); len(lines) > 0 {
		buf.WriteString(strings.Join(lines, "\n"))
		buf.WriteString("\n\n")
	}

	buf.WriteString("object Client {\n\n")

	blocks := make([]string, 0, len(defs))
	for _, def := range defs {
		blocks = append(blocks, indent(c.EmitDecl(def), 1))
	}
	buf.WriteString(strings.Join(blocks, "\n\n"))

	buf.WriteString("\n\n}\n")

	return []File{{Name: "Client", Source: buf.String()}}
}

func (c *Context) writeSplit(defs []*ast.Definition) []File {
	files := make([]File, 0, len(defs)+1)

	var pkgBuf strings.Builder
	fmt.Fprintf(&pkgBuf, "package %s\n\n", c.Cfg.PackageName)
	fmt.Fprintf(&pkgBuf, "package object %s {\n\n", c.Cfg.PackageName)

	var phantoms []string
	for _, def := range defs {
		if def.Kind == ast.Object || def.Kind == ast.Interface {
			phantoms = append(phantoms, indent(c.phantomLine(def), 1))
		}
	}
	pkgBuf.WriteString(strings.Join(phantoms, "\n\n"))
	pkgBuf.WriteString("\n\n}\n")

	files = append(files, File{Name: "package", Source: pkgBuf.String()})

	for _, def := range defs {
		var buf strings.Builder
		fmt.Fprintf(&buf, "package %s\n\n", c.Cfg.PackageName)

		if lines := importsFor(def); len(lines) > 0 {
			buf.WriteString(strings.Join(lines, "\n"))
			buf.WriteString("\n\n")
		}

		buf.WriteString(c.emitDeclForSplitFile(def))
		buf.WriteString("\n")

		files = append(files, File{Name: c.DeclName(def.Name), Source: buf.String()})
	}

	return files
}
