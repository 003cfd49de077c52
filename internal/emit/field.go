package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/internal/mangle"
	"github.com/nicoburniske/caliban-gen/internal/typeprint"
)

// EmitField renders one field accessor (spec §4.4). Most fields emit a
// single accessor; abstract-type (union/interface) fields emit several
// (§4.5), so this always returns a slice.
func (c *Context) EmitField(owner *ast.Definition, field *ast.FieldDefinition) []string {
	innerName := typeprint.InnermostNamed(field.Type)
	def := c.Doc.Schema.Types[innerName]

	switch {
	case def != nil && def.Kind == ast.Union:
		return c.emitUnionField(owner, field, def)
	case def != nil && def.Kind == ast.Interface:
		return c.emitInterfaceField(owner, field, def)
	case def != nil && def.Kind == ast.Object:
		return []string{c.emitCompositeField(owner, field, def)}
	default:
		// Scalar, Enum, or an unmapped/unknown scalar name (§7): all three
		// use the Scalar() builder and a plain accessor, the difference
		// being entirely in ScalarExpr's fallback chain (§4.3).
		return []string{c.emitScalarField(owner, field)}
	}
}

func signature(fieldName, typeParam string, params, implicits []string, returnType string) string {
	var b strings.Builder
	b.WriteString("def ")
	b.WriteString(mangle.DefSite(fieldName))
	b.WriteString(typeParam)
	if len(params) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(params, ", "))
		b.WriteString(")")
	}
	if len(implicits) > 0 {
		b.WriteString("(implicit ")
		b.WriteString(strings.Join(implicits, ", "))
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(returnType)
	return b.String()
}

// fieldCallBody renders the `Field("<wire>", <builder>[, arguments = List(...)])`
// call that every accessor's body is, ultimately, a thin wrapper around.
func fieldCallBody(wire, builder string, calls []string) string {
	if len(calls) == 0 {
		return fmt.Sprintf("Field(%q, %s)", wire, builder)
	}

	return fmt.Sprintf("Field(%q, %s, arguments = List(%s))", wire, builder, strings.Join(calls, ", "))
}

func (c *Context) emitScalarField(owner *ast.Definition, field *ast.FieldDefinition) string {
	var buf strings.Builder
	writeDocstring(&buf, "", field.Description)
	writeDeprecation(&buf, "", field.Directives)

	innerName := typeprint.InnermostNamed(field.Type)
	leaf := typeprint.Leaf{TypeExpr: c.ScalarExpr(innerName), Builder: "Scalar()"}
	rendered := typeprint.Print(field.Type, leaf)

	plan := c.planArguments(field.Arguments)
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", c.OwnerExpr(owner), rendered.TypeExpr)

	buf.WriteString(signature(field.Name, "", plan.params, plan.implicits, returnType))
	buf.WriteString(" =\n  ")
	buf.WriteString(fieldCallBody(field.Name, rendered.Builder, plan.calls))

	return buf.String()
}

func (c *Context) emitCompositeField(owner *ast.Definition, field *ast.FieldDefinition, inner *ast.Definition) string {
	var buf strings.Builder
	writeDocstring(&buf, "", field.Description)
	writeDeprecation(&buf, "", field.Directives)

	leaf := typeprint.Leaf{TypeExpr: "A", Builder: "Obj(innerSelection)"}
	rendered := typeprint.Print(field.Type, leaf)

	plan := c.planArguments(field.Arguments)
	params := append([]string{fmt.Sprintf("innerSelection: SelectionBuilder[%s, A]", c.DeclName(inner.Name))}, plan.params...)
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", c.OwnerExpr(owner), rendered.TypeExpr)

	buf.WriteString(signature(field.Name, "[A]", params, plan.implicits, returnType))
	buf.WriteString(" =\n  ")
	buf.WriteString(fieldCallBody(field.Name, rendered.Builder, plan.calls))

	return buf.String()
}
