// Package scalar implements ScalarResolver (spec §4.3): translating a
// GraphQL scalar (or mapping-redirected enum) name into a target type
// expression.
package scalar

// builtins maps the five built-in GraphQL scalars to their target type
// expression.
var builtins = map[string]string{
	"Int":     "Int",
	"Float":   "Double",
	"String":  "String",
	"Boolean": "Boolean",
	"ID":      "String",
}

// Resolver resolves scalar/enum names to target type expressions.
type Resolver struct {
	mappings map[string]string
}

// New builds a Resolver over the configured scalar mappings.
func New(mappings map[string]string) *Resolver {
	m := make(map[string]string, len(mappings))
	for k, v := range mappings {
		m[k] = v
	}
	return &Resolver{mappings: m}
}

// Mapped reports whether name has a user-supplied mapping. A mapped enum's
// own declaration is suppressed in favor of the mapping (§4.3 point 1).
func (r *Resolver) Mapped(name string) (string, bool) {
	expr, ok := r.mappings[name]
	return expr, ok
}

// Builtin reports whether name is one of the five built-in GraphQL scalars.
func Builtin(name string) (string, bool) {
	expr, ok := builtins[name]
	return expr, ok
}

// Resolve returns the target type expression for a scalar name: the user
// mapping if any, else the built-in mapping if any, else declName(name) - the
// mangled declaration name, used as a raw (possibly dangling, per §7) type
// reference.
func (r *Resolver) Resolve(name string, declName func(string) string) string {
	if expr, ok := r.Mapped(name); ok {
		return expr
	}
	if expr, ok := Builtin(name); ok {
		return expr
	}
	return declName(name)
}
