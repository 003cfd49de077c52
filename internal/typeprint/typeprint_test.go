package typeprint

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func named(name string, nonNull bool) *ast.Type {
	return &ast.Type{NamedType: name, NonNull: nonNull}
}

func list(elem *ast.Type, nonNull bool) *ast.Type {
	return &ast.Type{Elem: elem, NonNull: nonNull}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	scalarLeaf := Leaf{TypeExpr: "String", Builder: "Scalar()"}

	tests := []struct {
		name     string
		ref      *ast.Type
		wantType string
		wantB    string
	}{
		{
			name:     "String",
			ref:      named("String", false),
			wantType: "Option[String]",
			wantB:    "OptionOf(Scalar())",
		},
		{
			name:     "String!",
			ref:      named("String", true),
			wantType: "String",
			wantB:    "Scalar()",
		},
		{
			name:     "[String!]!",
			ref:      list(named("String", true), true),
			wantType: "List[String]",
			wantB:    "ListOf(Scalar())",
		},
		{
			name:     "[String]!",
			ref:      list(named("String", false), true),
			wantType: "List[Option[String]]",
			wantB:    "ListOf(OptionOf(Scalar()))",
		},
		{
			name:     "[String!]",
			ref:      list(named("String", true), false),
			wantType: "Option[List[String]]",
			wantB:    "OptionOf(ListOf(Scalar()))",
		},
		{
			name:     "[String]",
			ref:      list(named("String", false), false),
			wantType: "Option[List[Option[String]]]",
			wantB:    "OptionOf(ListOf(OptionOf(Scalar())))",
		},
		{
			name:     "[[String!]!]!",
			ref:      list(list(named("String", true), true), true),
			wantType: "List[List[String]]",
			wantB:    "ListOf(ListOf(Scalar()))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Print(tt.ref, scalarLeaf)
			if got.TypeExpr != tt.wantType {
				t.Errorf("TypeExpr = %q, want %q", got.TypeExpr, tt.wantType)
			}
			if got.Builder != tt.wantB {
				t.Errorf("Builder = %q, want %q", got.Builder, tt.wantB)
			}
		})
	}
}

func TestInnermostNamed(t *testing.T) {
	t.Parallel()

	ref := list(list(named("Character", true), true), false)
	if got := InnermostNamed(ref); got != "Character" {
		t.Errorf("InnermostNamed() = %q, want %q", got, "Character")
	}
}
