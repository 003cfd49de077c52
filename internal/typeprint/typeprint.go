// Package typeprint implements TypePrinter (spec §4.1): rendering a GraphQL
// type reference both as a target type expression and as the matching
// FieldBuilder expression, preserving nesting exactly.
package typeprint

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Leaf is the base case the recursion bottoms out at: the type expression
// and builder expression for the Named() node at the center of the type
// reference, before any Option/List wrapping is applied. Scalars use
// Leaf{TypeExpr: scalarExpr, Builder: "Scalar()"}; composite fields use
// Leaf{TypeExpr: "A", Builder: "Obj(innerSelection)"} (or a union/interface
// variant of that builder expression) - the same generic selection type
// variable nests under Option/List exactly like a scalar would.
type Leaf struct {
	TypeExpr string
	Builder  string
}

// Rendered is the result of lowering a type reference: a target type
// expression and the FieldBuilder expression that decodes it.
type Rendered struct {
	TypeExpr string
	Builder  string
}

// Print lowers ref into its target type expression and FieldBuilder
// expression, per the nullability table in spec §4.1:
//
//	Named(n):    leaf
//	NonNull(x):  strip one Option wrapper from the default lowering of x
//	List(x):     wrap x's lowering in List[...]/ListOf(...)
//
// A bare (non-NonNull) node at any depth is optional, i.e. wrapped in
// Option[...]/OptionOf(...). Nesting is preserved exactly: `[String]!` lowers
// to List[Option[String]]/ListOf(OptionOf(Scalar())); `[String!]!` lowers to
// List[String]/ListOf(Scalar()).
func Print(ref *ast.Type, leaf Leaf) Rendered {
	typeExpr, builder := lower(ref, leaf)
	return Rendered{TypeExpr: typeExpr, Builder: builder}
}

func lower(ref *ast.Type, leaf Leaf) (typeExpr, builder string) {
	var baseType, baseBuilder string

	if ref.Elem != nil {
		elemType, elemBuilder := lower(ref.Elem, leaf)
		baseType = fmt.Sprintf("List[%s]", elemType)
		baseBuilder = fmt.Sprintf("ListOf(%s)", elemBuilder)
	} else {
		baseType = leaf.TypeExpr
		baseBuilder = leaf.Builder
	}

	if ref.NonNull {
		return baseType, baseBuilder
	}

	return fmt.Sprintf("Option[%s]", baseType), fmt.Sprintf("OptionOf(%s)", baseBuilder)
}

// SDL renders ref back to its GraphQL SDL literal (e.g. "[String]!"),
// reproduced verbatim in emitted Argument(...) calls (spec §4.4).
func SDL(ref *ast.Type) string {
	if ref.Elem != nil {
		s := fmt.Sprintf("[%s]", SDL(ref.Elem))
		if ref.NonNull {
			s += "!"
		}
		return s
	}

	s := ref.NamedType
	if ref.NonNull {
		s += "!"
	}
	return s
}

// IsList reports whether ref is, at its outermost level, a list type.
func IsList(ref *ast.Type) bool {
	return ref.Elem != nil
}

// InnermostNamed walks through List wrappers to the named type at the
// center of ref.
func InnermostNamed(ref *ast.Type) string {
	for ref.Elem != nil {
		ref = ref.Elem
	}
	return ref.NamedType
}
