package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// EmitObject renders a GraphQL object or interface type as an opaque
// phantom type plus a container object holding one accessor per field
// (spec §4.5 "Object type", "Interface"). A schema-root object's phantom is
// emitted as an alias to its RootQuery/RootMutation/RootSubscription
// sentinel instead of a bare phantom declaration.
//
// In aggregated (single-file) mode the phantom and the object container sit
// next to each other in the same declaration; in split-file mode the
// phantom moves into the shared package-object file and EmitObjectBody
// renders just the container, so callers needing the split-file shape
// should use that instead.
func (c *Context) EmitObject(def *ast.Definition) string {
	var buf strings.Builder
	writeDocstring(&buf, "", def.Description)
	buf.WriteString(c.phantomLine(def))
	buf.WriteString("\n\n")
	buf.WriteString(c.EmitObjectBody(def))
	return buf.String()
}

// EmitObjectBody renders just the `object N { ... }` container, without the
// phantom type declaration (used in split-file mode, where the phantom
// lives in the package-object file instead).
func (c *Context) EmitObjectBody(def *ast.Definition) string {
	name := c.DeclName(def.Name)

	var buf strings.Builder
	fmt.Fprintf(&buf, "object %s {\n", name)

	var blocks []string
	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			// Introspection meta-fields (__typename, __schema, __type) are
			// handled by the client runtime itself, not by generated
			// selection accessors.
			continue
		}
		for _, block := range c.EmitField(def, field) {
			blocks = append(blocks, indent(block, 1))
		}
	}

	buf.WriteString(strings.Join(blocks, "\n\n"))
	buf.WriteString("\n}")

	return buf.String()
}

// phantomLine renders the opaque phantom type declaration for an object or
// interface type: a bare `type N` for an ordinary type, or `type N =
// RootQuery` (etc.) for a schema-root type.
func (c *Context) phantomLine(def *ast.Definition) string {
	name := c.DeclName(def.Name)
	if alias, ok := c.IsRoot(def.Name); ok {
		return fmt.Sprintf("type %s = %s", name, alias)
	}
	return fmt.Sprintf("type %s", name)
}

func indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
