package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/internal/mangle"
	"github.com/nicoburniske/caliban-gen/internal/typeprint"
)

// emitUnionField renders the two accessors a union-typed field gets on its
// owner (spec §4.5 "Union"): a primary exhaustive accessor and an
// …Option accessor.
func (c *Context) emitUnionField(owner *ast.Definition, field *ast.FieldDefinition, union *ast.Definition) []string {
	variants := c.Doc.UnionMembers(union)
	return []string{
		c.emitExhaustiveAbstractField(owner, field, field.Name, variants),
		c.emitOptionAbstractField(owner, field, variants),
	}
}

// emitInterfaceField renders up to three accessors for an interface-typed
// field (spec §4.5 "Interface"): the per-implementor exhaustive and
// …Option accessors (skipped entirely when the interface has zero
// implementors, per the spec's flagged open question on that edge case -
// an empty Map there would be an impossible selection with no useful
// variant to pick), and the …Interface common-fields accessor, which is
// always emitted.
func (c *Context) emitInterfaceField(owner *ast.Definition, field *ast.FieldDefinition, iface *ast.Definition) []string {
	implementors := c.Doc.Implementors(iface)

	var out []string
	if len(implementors) > 0 {
		out = append(out, c.emitExhaustiveAbstractField(owner, field, field.Name, implementors))
		out = append(out, c.emitOptionAbstractField(owner, field, implementors))
	}
	out = append(out, c.emitInterfaceCommonField(owner, field, iface))

	return out
}

// emitExhaustiveAbstractField renders the accessor that requires one
// `on<Variant>` selection per variant (union member or interface
// implementor), all returning a common A, building a ChoiceOf(Map(...)).
func (c *Context) emitExhaustiveAbstractField(owner *ast.Definition, field *ast.FieldDefinition, accessorName string, variants ast.DefinitionList) string {
	var buf strings.Builder
	writeDocstring(&buf, "", field.Description)
	writeDeprecation(&buf, "", field.Directives)

	var params, entries []string
	for _, v := range variants {
		paramName := "on" + v.Name
		params = append(params, fmt.Sprintf("%s: SelectionBuilder[%s, A]", mangle.DefSite(paramName), c.DeclName(v.Name)))
		entries = append(entries, fmt.Sprintf("%q -> Obj(%s)", v.Name, mangle.Identifier(paramName)))
	}

	leaf := typeprint.Leaf{TypeExpr: "A", Builder: fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(entries, ", "))}
	rendered := typeprint.Print(field.Type, leaf)

	plan := c.planArguments(field.Arguments)
	allParams := append(append([]string{}, params...), plan.params...)
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", c.OwnerExpr(owner), rendered.TypeExpr)

	buf.WriteString(signature(accessorName, "[A]", allParams, plan.implicits, returnType))
	buf.WriteString(" =\n  ")
	buf.WriteString(fieldCallBody(field.Name, rendered.Builder, plan.calls))

	return buf.String()
}

// emitOptionAbstractField renders the `<field>Option` accessor: every
// `on<Variant>` defaults to None, and an absent variant contributes
// NullField via fold (spec §4.5).
func (c *Context) emitOptionAbstractField(owner *ast.Definition, field *ast.FieldDefinition, variants ast.DefinitionList) string {
	var buf strings.Builder
	writeDocstring(&buf, "", field.Description)
	writeDeprecation(&buf, "", field.Directives)

	var params, entries []string
	for _, v := range variants {
		paramName := "on" + v.Name
		params = append(params, fmt.Sprintf("%s: Option[SelectionBuilder[%s, A]] = None", mangle.DefSite(paramName), c.DeclName(v.Name)))
		entries = append(entries, fmt.Sprintf("%q -> %s.fold[FieldBuilder[A]](NullField)(Obj(_))", v.Name, mangle.Identifier(paramName)))
	}

	leaf := typeprint.Leaf{TypeExpr: "A", Builder: fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(entries, ", "))}
	rendered := typeprint.Print(field.Type, leaf)

	plan := c.planArguments(field.Arguments)
	allParams := append(append([]string{}, params...), plan.params...)
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", c.OwnerExpr(owner), rendered.TypeExpr)

	buf.WriteString(signature(field.Name+"Option", "[A]", allParams, plan.implicits, returnType))
	buf.WriteString(" =\n  ")
	buf.WriteString(fieldCallBody(field.Name, rendered.Builder, plan.calls))

	return buf.String()
}

// emitInterfaceCommonField renders the `<field>Interface` accessor: a
// single SelectionBuilder over the interface's own (object-shaped)
// declaration, independent of which implementor is actually returned.
func (c *Context) emitInterfaceCommonField(owner *ast.Definition, field *ast.FieldDefinition, iface *ast.Definition) string {
	var buf strings.Builder
	writeDocstring(&buf, "", field.Description)
	writeDeprecation(&buf, "", field.Directives)

	leaf := typeprint.Leaf{TypeExpr: "A", Builder: "Obj(innerSelection)"}
	rendered := typeprint.Print(field.Type, leaf)

	plan := c.planArguments(field.Arguments)
	params := append([]string{fmt.Sprintf("innerSelection: SelectionBuilder[%s, A]", c.DeclName(iface.Name))}, plan.params...)
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", c.OwnerExpr(owner), rendered.TypeExpr)

	buf.WriteString(signature(field.Name+"Interface", "[A]", params, plan.implicits, returnType))
	buf.WriteString(" =\n  ")
	buf.WriteString(fieldCallBody(field.Name, rendered.Builder, plan.calls))

	return buf.String()
}
