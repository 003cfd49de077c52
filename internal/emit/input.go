package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/internal/mangle"
	"github.com/nicoburniske/caliban-gen/internal/typeprint"
)

// EmitInput renders a GraphQL input object as a case class plus an
// ArgEncoder building an __ObjectValue, preserving field order (spec §4.5
// "Input object").
func (c *Context) EmitInput(def *ast.Definition) string {
	name := c.DeclName(def.Name)

	var params []string
	var objectEntries []string

	for _, field := range def.Fields {
		fieldIdent := mangle.RecordFieldDefSite(field.Name)
		typeExpr := c.argTypeExpr(field.Type)

		def := typeExpr
		if d := argDefault(field.Type); d != "" {
			def = fmt.Sprintf("%s = %s", typeExpr, d)
		}
		params = append(params, fmt.Sprintf("%s: %s", fieldIdent, def))

		accessor := "value." + mangle.RecordField(field.Name)
		objectEntries = append(objectEntries, fmt.Sprintf("%q -> %s", field.Name, c.inputFieldEncodeExpr(field, accessor)))
	}

	var buf strings.Builder
	writeDocstring(&buf, "", def.Description)
	fmt.Fprintf(&buf, "case class %s(%s)\n\n", name, strings.Join(params, ", "))
	fmt.Fprintf(&buf, "object %s {\n", name)
	fmt.Fprintf(&buf, "  implicit val encoder: ArgEncoder[%s] = new ArgEncoder[%s] {\n", name, name)
	buf.WriteString("    override def encode(value: " + name + "): __Value =\n")
	buf.WriteString("      __ObjectValue(List(\n")
	for i, entry := range objectEntries {
		buf.WriteString("        " + entry)
		if i < len(objectEntries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("      ))\n")
	buf.WriteString("  }\n")
	buf.WriteString("}")

	return buf.String()
}

// inputFieldEncodeExpr renders the value expression an input field
// contributes to its __ObjectValue entry: a list field wraps its elements
// in __ListValue(...); everything else (scalar, enum, nested input object)
// defers to the generic ArgEncoder instance in scope.
func (c *Context) inputFieldEncodeExpr(field *ast.FieldDefinition, accessor string) string {
	if typeprint.IsList(field.Type) {
		return fmt.Sprintf("__ListValue(%s.map(v => implicitly[ArgEncoder[%s]].encode(v)))", accessor, c.argTypeExpr(field.Type.Elem))
	}
	return fmt.Sprintf("implicitly[ArgEncoder[%s]].encode(%s)", c.argTypeExpr(field.Type), accessor)
}
