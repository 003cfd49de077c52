// Package mangle deterministically rewrites GraphQL identifiers into safe
// target identifiers and resolves collisions, per spec §4.2. It is a pure
// function of its inputs: no global state, no ordering dependence beyond the
// order the caller supplies.
package mangle

import (
	"fmt"
	"strings"
)

// reserved holds the target language's reserved words. The list favors the
// Scala keyword set the client library's own vocabulary (SelectionBuilder,
// object, def, val, type, case, trait, with, wait as a soft keyword
// inherited from java.lang.Object) is written against.
var reserved = map[string]bool{
	"abstract": true, "case": true, "catch": true, "class": true,
	"def": true, "do": true, "else": true, "extends": true,
	"false": true, "final": true, "finally": true, "for": true,
	"forSome": true, "if": true, "implicit": true, "import": true,
	"lazy": true, "match": true, "new": true, "null": true,
	"object": true, "override": true, "package": true, "private": true,
	"protected": true, "return": true, "sealed": true, "super": true,
	"this": true, "throw": true, "trait": true, "try": true,
	"true": true, "type": true, "val": true, "var": true,
	"while": true, "with": true, "yield": true, "wait": true,
	"notify": true, "notifyAll": true, "equals": true, "hashCode": true,
	"toString": true, "clone": true, "finalize": true,
}

// IsReserved reports whether name collides with a target keyword (or a
// java.lang.Object method the target inherits, like wait/notify/toString).
func IsReserved(name string) bool {
	return reserved[name]
}

// needsRawQuoting reports whether name, as a bare identifier, would be
// illegal or ambiguous in the target's syntax: a reserved word, or an
// identifier with leading/trailing underscores beyond the single
// leading-underscore-then-letter form the target accepts bare (_nickname).
func needsRawQuoting(name string) bool {
	if reserved[name] {
		return true
	}
	if name == "" {
		return false
	}
	if strings.HasSuffix(name, "_") {
		return true
	}
	if strings.HasPrefix(name, "_") {
		rest := strings.TrimPrefix(name, "_")
		// "_nickname" (single leading underscore then a letter) is fine
		// bare; "__typename" or a bare "_" is not.
		if rest == "" || strings.HasPrefix(rest, "_") {
			return true
		}
	}
	return false
}

// Identifier renders name as it is used in a value position (a field
// accessor, a method call target): quoted with the target's raw-identifier
// syntax when required, otherwise unchanged.
func Identifier(name string) string {
	if needsRawQuoting(name) {
		return "`" + name + "`"
	}
	return name
}

// DefSite renders name as it appears immediately before a colon in a
// def/val/case-class-field signature. A trailing underscore needs a
// separating space before the colon (`_name_ :`) so the target lexer does
// not read `_name_:` as one operator-ish token.
func DefSite(name string) string {
	id := Identifier(name)
	if strings.HasSuffix(name, "_") {
		return id + " "
	}
	return id
}

// RecordField renders name as a record field used inside an encoder body.
// A reserved word gets a `$` marker suffix appended (wait -> wait$) instead
// of raw-identifier quoting, since encoder bodies reference the field via
// `.name` projection, not a standalone def site; the wire string (the
// original GraphQL name) is unaffected and always carried separately by the
// caller.
func RecordField(name string) string {
	if reserved[name] {
		return name + "$"
	}
	return Identifier(name)
}

// RecordFieldDefSite renders name as it appears at a record (case class)
// field's own declaration site, which needs the same trailing-underscore
// spacing DefSite applies, but via the RecordField `$`-marker scheme rather
// than raw-identifier quoting.
func RecordFieldDefSite(name string) string {
	id := RecordField(name)
	if strings.HasSuffix(name, "_") {
		return id + " "
	}
	return id
}

// ResolveCollisions takes names in source order and returns, for each
// position, the identifier to use: the first occurrence of any ASCII
// case-fold class keeps its original spelling, every subsequent occurrence
// gets a `_N` suffix (N = 1, 2, ... in source order). This is the top-level
// declaration / enum-value collision rule; it runs before Identifier/
// DefSite/RecordField quoting, which apply to the result.
func ResolveCollisions(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))

	for i, name := range names {
		fold := strings.ToLower(name)
		count := seen[fold]
		seen[fold] = count + 1

		if count == 0 {
			out[i] = name
		} else {
			out[i] = fmt.Sprintf("%s_%d", name, count)
		}
	}

	return out
}
