package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/internal/mangle"
)

// EmitEnum renders a GraphQL enum as a sealed trait with one nullary
// variant per value, a ScalarDecoder, an ArgEncoder, and a `values` vector
// in source order (spec §4.5 "Enum"). Callers must not invoke this for an
// enum whose name is scalar-mapped; those are suppressed entirely and
// substituted at every reference site (§4.3).
func (c *Context) EmitEnum(def *ast.Definition) string {
	name := c.DeclName(def.Name)

	valueNames := make([]string, len(def.EnumValues))
	for i, v := range def.EnumValues {
		valueNames[i] = v.Name
	}
	mangled := mangle.ResolveCollisions(valueNames)

	var buf strings.Builder
	writeDocstring(&buf, "", def.Description)
	fmt.Fprintf(&buf, "sealed trait %s extends Product with Serializable {\n  def value: String\n}\n", name)
	fmt.Fprintf(&buf, "object %s {\n\n", name)

	var cases, decodeCases, encodeCases []string
	for i, v := range def.EnumValues {
		ident := mangled[i]

		var caseBuf strings.Builder
		writeDocstring(&caseBuf, "  ", v.Description)
		writeDeprecation(&caseBuf, "  ", v.Directives)
		fmt.Fprintf(&caseBuf, "  case object %s extends %s {\n    override val value: String = %q\n  }", ident, name, v.Name)
		cases = append(cases, caseBuf.String())

		decodeCases = append(decodeCases, fmt.Sprintf("    case __StringValue(%q) => Right(%s)", v.Name, ident))
		encodeCases = append(encodeCases, fmt.Sprintf("    case %s => __EnumValue(%q)", ident, v.Name))
	}

	if c.Cfg.ExtensibleEnums {
		cases = append(cases, fmt.Sprintf("  case class __Unknown(value: String) extends %s", name))
		decodeCases = append(decodeCases, "    case __StringValue(other) => Right(__Unknown(other))")
		encodeCases = append(encodeCases, "    case __Unknown(value) => __EnumValue(value)")
	} else {
		decodeCases = append(decodeCases, fmt.Sprintf("    case other => Left(DecodingError(s\"Can't build %s from input $other\"))", name))
	}

	buf.WriteString(strings.Join(cases, "\n\n"))
	buf.WriteString("\n\n")

	fmt.Fprintf(&buf, "  val values: Vector[%s] = Vector(%s)\n\n", name, strings.Join(mangled, ", "))

	fmt.Fprintf(&buf, "  implicit val decoder: ScalarDecoder[%s] = {\n%s\n  }\n\n", name, strings.Join(decodeCases, "\n"))
	fmt.Fprintf(&buf, "  implicit val encoder: ArgEncoder[%s] = {\n%s\n  }\n", name, strings.Join(encodeCases, "\n"))

	buf.WriteString("}")

	return buf.String()
}
