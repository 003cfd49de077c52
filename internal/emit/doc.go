package emit

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// writeDocstring emits a GraphQL description as a block comment above an
// accessor (spec §4.4 "Docstring").
func writeDocstring(buf *strings.Builder, indent, description string) {
	if description == "" {
		return
	}

	lines := strings.Split(strings.TrimRight(description, "\n"), "\n")
	if len(lines) == 1 {
		fmt.Fprintf(buf, "%s/** %s */\n", indent, lines[0])
		return
	}

	fmt.Fprintf(buf, "%s/**\n", indent)
	for _, line := range lines {
		fmt.Fprintf(buf, "%s * %s\n", indent, line)
	}
	fmt.Fprintf(buf, "%s */\n", indent)
}

// deprecationDirective looks for @deprecated on a field or enum value,
// returning its reason and whether it was present at all.
func deprecationDirective(directives ast.DirectiveList) (reason string, ok bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}

	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}
	return reason, true
}

// writeDeprecation emits the target's @deprecated(message, since) marker
// (spec §4.4 "Deprecation"): reasonless @deprecated emits both strings
// empty; a reason containing a newline is emitted triple-quoted so it
// survives as one string literal.
func writeDeprecation(buf *strings.Builder, indent string, directives ast.DirectiveList) {
	reason, ok := deprecationDirective(directives)
	if !ok {
		return
	}

	fmt.Fprintf(buf, "%s@deprecated(%s, \"\")\n", indent, quoteScala(reason))
}

func quoteScala(s string) string {
	if strings.Contains(s, "\n") {
		return `"""` + s + `"""`
	}
	return fmt.Sprintf("%q", s)
}
