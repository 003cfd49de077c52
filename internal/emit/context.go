// Package emit implements FieldEmitter, TypeEmitter, and DocumentEmitter
// (spec §4.4-§4.6): it walks a validated schema document and produces the
// target client library's source text.
package emit

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/nicoburniske/caliban-gen/config"
	"github.com/nicoburniske/caliban-gen/internal/mangle"
	"github.com/nicoburniske/caliban-gen/internal/scalar"
	"github.com/nicoburniske/caliban-gen/schemadoc"
)

// Root operation sentinel names from the target client library's runtime
// vocabulary (§3 "Root operation type names ... are emitted as aliases to
// the library's RootQuery / RootMutation / RootSubscription sentinels").
const (
	RootQuery        = "RootQuery"
	RootMutation     = "RootMutation"
	RootSubscription = "RootSubscription"
)

// Context threads the configuration and the resolved naming tables (the
// collision-resolved top-level identifiers, the schema-root aliases) into
// every emission site, per spec §4.7.
type Context struct {
	Doc    *schemadoc.Document
	Cfg    *config.Config
	Scalar *scalar.Resolver

	// declNames maps a GraphQL top-level type name to its mangled target
	// identifier, after case-insensitive collision resolution (§4.2 rule 3).
	declNames map[string]string

	// rootAlias maps a GraphQL schema-root type name (e.g. "Query") to the
	// library sentinel it aliases ("RootQuery").
	rootAlias map[string]string
}

// NewContext builds the naming tables (collision resolution over top-level
// declarations, schema-root alias resolution) and returns a ready Context.
func NewContext(doc *schemadoc.Document, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}

	ctx := &Context{
		Doc:    doc,
		Cfg:    cfg,
		Scalar: scalar.New(cfg.ScalarMappings),
	}

	ctx.declNames = resolveDeclNames(doc)
	ctx.rootAlias = resolveRootAliases(doc.Schema)

	return ctx
}

// resolveDeclNames applies the top-level case-insensitive collision rule
// (§4.2 rule 3) across every definition kind that contributes its own
// top-level declaration: Object, Interface, Enum, InputObject. Union and
// Scalar kinds never collide here since they never declare a name of their
// own (Scalar references are either mapped, builtin, or a dangling raw name
// per §7; Union contributes no declaration at all per §4.5).
func resolveDeclNames(doc *schemadoc.Document) map[string]string {
	var names []string
	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Object, ast.Interface, ast.Enum, ast.InputObject:
			names = append(names, def.Name)
		}
	}

	mangled := mangle.ResolveCollisions(names)

	out := make(map[string]string, len(names))
	for i, name := range names {
		out[name] = mangled[i]
	}
	return out
}

func resolveRootAliases(schema *ast.Schema) map[string]string {
	out := make(map[string]string, 3)
	if schema.Query != nil {
		out[schema.Query.Name] = RootQuery
	}
	if schema.Mutation != nil {
		out[schema.Mutation.Name] = RootMutation
	}
	if schema.Subscription != nil {
		out[schema.Subscription.Name] = RootSubscription
	}
	return out
}

// DeclName returns the mangled top-level identifier for a GraphQL type
// name, or the name itself if it never went through collision resolution
// (enum values go through a separate, per-enum resolution; see enum.go).
func (c *Context) DeclName(name string) string {
	if mangled, ok := c.declNames[name]; ok {
		return mangled
	}
	return name
}

// IsRoot reports whether name is a schema root operation type, and returns
// the sentinel it aliases.
func (c *Context) IsRoot(name string) (string, bool) {
	alias, ok := c.rootAlias[name]
	return alias, ok
}

// OwnerExpr returns the type expression used as the Owner type parameter in
// SelectionBuilder[Owner, _] for fields declared on def: the root sentinel
// when def is a schema root type, else def's mangled declaration name.
func (c *Context) OwnerExpr(def *ast.Definition) string {
	if alias, ok := c.IsRoot(def.Name); ok {
		return alias
	}
	return c.DeclName(def.Name)
}

// ScalarExpr resolves a scalar (or mapped-enum) name to its target type
// expression, falling back to the mangled declaration name for anything
// without a mapping or builtin (§4.3, §7 "Unknown scalar").
func (c *Context) ScalarExpr(name string) string {
	return c.Scalar.Resolve(name, c.DeclName)
}
