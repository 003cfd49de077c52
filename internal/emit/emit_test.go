package emit

import (
	"strings"
	"testing"

	"github.com/nicoburniske/caliban-gen/config"
	"github.com/nicoburniske/caliban-gen/schemadoc"
)

func parseDoc(t *testing.T, src string) *schemadoc.Document {
	t.Helper()
	doc, err := schemadoc.Parse(src, "test.graphql")
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return doc
}

func TestWriteDocstringSingleLine(t *testing.T) {
	var buf strings.Builder
	writeDocstring(&buf, "  ", "a character in the saga")
	if buf.String() != "  /** a character in the saga */\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteDocstringMultiLine(t *testing.T) {
	var buf strings.Builder
	writeDocstring(&buf, "", "line one\nline two")
	want := "/**\n * line one\n * line two\n */\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteDocstringEmpty(t *testing.T) {
	var buf strings.Builder
	writeDocstring(&buf, "", "")
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty description, got %q", buf.String())
	}
}

func TestWriteDeprecationWithReason(t *testing.T) {
	doc := parseDoc(t, `type Q { old: String! @deprecated(reason: "use new instead") }`)
	field := doc.Schema.Types["Q"].Fields.ForName("old")

	var buf strings.Builder
	writeDeprecation(&buf, "", field.Directives)
	if buf.String() != `@deprecated("use new instead", "")`+"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteDeprecationNoReason(t *testing.T) {
	doc := parseDoc(t, `type Q { old: String! @deprecated }`)
	field := doc.Schema.Types["Q"].Fields.ForName("old")

	var buf strings.Builder
	writeDeprecation(&buf, "", field.Directives)
	if buf.String() != `@deprecated("", "")`+"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteDeprecationAbsent(t *testing.T) {
	doc := parseDoc(t, `type Q { old: String! }`)
	field := doc.Schema.Types["Q"].Fields.ForName("old")

	var buf strings.Builder
	writeDeprecation(&buf, "", field.Directives)
	if buf.Len() != 0 {
		t.Errorf("expected no output absent @deprecated, got %q", buf.String())
	}
}

func TestPlanArgumentsEncodesSDLVerbatim(t *testing.T) {
	doc := parseDoc(t, `type Q { characters(ids: [ID!]!): [String!]! }`)
	ctx := NewContext(doc, config.Default())
	field := doc.Schema.Types["Q"].Fields.ForName("characters")

	plan := ctx.planArguments(field.Arguments)
	if len(plan.calls) != 1 {
		t.Fatalf("expected 1 argument call, got %d", len(plan.calls))
	}
	if plan.calls[0] != `Argument("ids", ids, "[ID!]!")(encoder0)` {
		t.Errorf("got %q", plan.calls[0])
	}
	if plan.params[0] != "ids: List[String] = Nil" {
		t.Errorf("expected a required-list param defaulting to Nil, got %q", plan.params[0])
	}
}

func TestOwnerExprNonRoot(t *testing.T) {
	doc := parseDoc(t, `type Character { name: String! }`)
	ctx := NewContext(doc, config.Default())

	def := doc.Schema.Types["Character"]
	if got := ctx.OwnerExpr(def); got != "Character" {
		t.Errorf("got %q, want Character", got)
	}
}

func TestOwnerExprRoot(t *testing.T) {
	doc := parseDoc(t, `
		schema { query: Q }
		type Q { name: String! }
	`)
	ctx := NewContext(doc, config.Default())

	def := doc.Schema.Types["Q"]
	if got := ctx.OwnerExpr(def); got != RootQuery {
		t.Errorf("got %q, want %s", got, RootQuery)
	}
}

func TestDeclNameCollision(t *testing.T) {
	doc := parseDoc(t, `
		type jedi { name: String! }
		type Jedi { name: String! }
	`)
	ctx := NewContext(doc, config.Default())

	if got := ctx.DeclName("jedi"); got != "jedi" {
		t.Errorf("first occurrence should keep its spelling, got %q", got)
	}
	if got := ctx.DeclName("Jedi"); got != "Jedi_1" {
		t.Errorf("second occurrence should get a _1 suffix, got %q", got)
	}
}
