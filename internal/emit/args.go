package emit

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/internal/mangle"
	"github.com/nicoburniske/caliban-gen/internal/typeprint"
)

// argPlan is the rendering of a field's argument list (spec §4.4 "Field
// with arguments"): one named parameter and one implicit ArgEncoder
// parameter per argument, in declaration order, plus the Argument(...)
// call each contributes to the body's `arguments = List(...)` clause.
type argPlan struct {
	params    []string // e.g. "name: Option[String] = None"
	implicits []string // e.g. "encoder0: ArgEncoder[Option[String]]"
	calls     []string // e.g. `Argument("name", name, "String")(encoder0)`
}

func (c *Context) planArguments(args ast.ArgumentDefinitionList) argPlan {
	var plan argPlan

	for i, arg := range args {
		typeExpr := c.argTypeExpr(arg.Type)

		def := typeExpr
		if d := argDefault(arg.Type); d != "" {
			def = fmt.Sprintf("%s = %s", typeExpr, d)
		}
		plan.params = append(plan.params, fmt.Sprintf("%s: %s", mangle.DefSite(arg.Name), def))

		encoderName := fmt.Sprintf("encoder%d", i)
		plan.implicits = append(plan.implicits, fmt.Sprintf("%s: ArgEncoder[%s]", encoderName, typeExpr))

		plan.calls = append(plan.calls, fmt.Sprintf("Argument(%q, %s, %q)(%s)",
			arg.Name, mangle.Identifier(arg.Name), typeprint.SDL(arg.Type), encoderName))
	}

	return plan
}

// argTypeExpr renders an argument's target type expression. Argument types
// are always scalar, enum, or input-object named types (GraphQL forbids
// output-only object/interface/union types in argument position), so the
// leaf builder half of typeprint.Print is never consulted; only TypeExpr is
// used.
func (c *Context) argTypeExpr(ref *ast.Type) string {
	name := typeprint.InnermostNamed(ref)
	leaf := typeprint.Leaf{TypeExpr: c.argLeafTypeExpr(name), Builder: "Scalar()"}
	return typeprint.Print(ref, leaf).TypeExpr
}

func (c *Context) argLeafTypeExpr(name string) string {
	def := c.Doc.Schema.Types[name]
	if def != nil && def.Kind == ast.InputObject {
		return c.DeclName(name)
	}
	return c.ScalarExpr(name)
}

// argDefault returns the default value expression for an argument's
// outermost type shape (spec §4.4): an optional (non-NonNull) outer wrapper
// defaults to None; an (outer) required list defaults to Nil; anything else
// (a required scalar/enum/input) has no default and is a mandatory
// parameter.
func argDefault(ref *ast.Type) string {
	if !ref.NonNull {
		return "None"
	}
	if ref.Elem != nil {
		return "Nil"
	}
	return ""
}
