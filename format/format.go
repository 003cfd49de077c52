// Package format wraps the external formatter collaborator (§6 of the
// spec): generation always produces raw text first, then optionally hands it
// to a Formatter for final, canonical whitespace.
//
// The generated target is not Go, so go/format cannot be used directly the
// way gqlgenc formats its own output; the default Formatter instead shells
// out to an external formatter command, mirroring golang.org/x/tools/imports
// in spirit (a blocking call the host scheduler must know about, per §5) but
// over an arbitrary target-language formatter binary.
package format

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Formatter re-indents a generated text blob to canonical form. It must
// preserve semantics and never alter string literals (§6).
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// Noop returns src unchanged. Used when enableFmt=false.
var Noop Formatter = noopFormatter{}

type noopFormatter struct{}

func (noopFormatter) Format(_ string, src []byte) ([]byte, error) {
	return src, nil
}

// ExecFormatter formats by piping src through an external command's stdin
// and reading the formatted result from stdout, e.g. `scalafmt --stdin`.
// Formatter failures are propagated untouched (§7); the raw pre-format text
// is discarded on error, never returned as a fallback.
type ExecFormatter struct {
	// Command is the formatter binary, e.g. "scalafmt".
	Command string
	// Args are passed before the filename-derived args, if any.
	Args []string
}

// NewExecFormatter builds an ExecFormatter for the given command.
func NewExecFormatter(command string, args ...string) *ExecFormatter {
	return &ExecFormatter{Command: command, Args: args}
}

func (f *ExecFormatter) Format(filename string, src []byte) ([]byte, error) {
	cmd := exec.Command(f.Command, f.Args...) //nolint:gosec // formatter command is operator-configured, not attacker input

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("format %s: %s: %w", filename, stderr.String(), err)
	}

	return stdout.Bytes(), nil
}
