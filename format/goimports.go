package format

import "golang.org/x/tools/imports"

// GoImportsFormatter formats Go source with golang.org/x/tools/imports, the
// same formatter gqlgenc's querygen/clientgen plugins run over their own
// generated Go files (plugins/querygen/plugin.go: imports.Process). It has
// no part in formatting the Scala-shaped client output itself — go/format
// cannot format non-Go source — but is exercised by `calibangen generate
// --self-check`, which runs the //go:generate anchor stub it writes into the
// output directory through goimports, separately from the generated client
// code.
type GoImportsFormatter struct{}

func (GoImportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
