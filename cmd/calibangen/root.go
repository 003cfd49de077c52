package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the command tree over fs, so tests can exercise the
// whole CLI against an in-memory filesystem instead of the real disk.
func newRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "calibangen",
		Short: "Generate a typed GraphQL client from a schema",
		Long: `calibangen reads a GraphQL schema and emits a typed client built
around the caliban-client SelectionBuilder vocabulary: one accessor per
field, a sealed trait with ScalarDecoder/ArgEncoder instances for every
enum, and a case class with an ArgEncoder for every input object.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(fs))
	root.AddCommand(newVersionCmd())

	return root
}
