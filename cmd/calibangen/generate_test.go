package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
schema { query: Q }
type Q { characters: [Character!]! }
type Character { name: String! }
`

func newTestFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestGenerateWritesSingleFile(t *testing.T) {
	fs := newTestFS(t, map[string]string{"schema.graphql": testSchema})

	cmd := newRootCmd(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"generate", "--schema", "schema.graphql", "--out", "gen"})

	require.NoError(t, cmd.Execute())

	exists, err := afero.Exists(fs, "gen/Client.scala")
	require.NoError(t, err)
	assert.True(t, exists, "expected gen/Client.scala to be written")

	content, err := afero.ReadFile(fs, "gen/Client.scala")
	require.NoError(t, err)
	assert.Contains(t, string(content), "type Q = RootQuery")
	assert.Contains(t, string(content), "object Character {")
}

func TestGenerateSplitFilesWithDerivedPackageName(t *testing.T) {
	fs := newTestFS(t, map[string]string{"my-schema.graphql": testSchema})

	cmd := newRootCmd(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"generate", "--schema", "my-schema.graphql", "--split-files", "--out", "gen"})

	require.NoError(t, cmd.Execute())

	for _, name := range []string{"gen/package.scala", "gen/Character.scala", "gen/Q.scala"} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.True(t, exists, "expected %s to be written", name)
	}

	pkg, err := afero.ReadFile(fs, "gen/package.scala")
	require.NoError(t, err)
	assert.Contains(t, string(pkg), "package object myschema {")
}

func TestGenerateRequiresASchema(t *testing.T) {
	fs := newTestFS(t, nil)

	cmd := newRootCmd(fs)
	cmd.SetArgs([]string{"generate"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema specified")
}

func TestGenerateUsesConfigFile(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"schema.graphql":  testSchema,
		".calibangen.yml": "schema:\n  - schema.graphql\nextensible_enums: true\n",
	})

	cmd := newRootCmd(fs)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "--out", "gen"})

	require.NoError(t, cmd.Execute())

	content, err := afero.ReadFile(fs, "gen/Client.scala")
	require.NoError(t, err)
	assert.Contains(t, string(content), "object Character {")
}

func TestGenerateSelfCheckWritesGoImportsFormattedStub(t *testing.T) {
	fs := newTestFS(t, map[string]string{"schema.graphql": testSchema})

	cmd := newRootCmd(fs)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "--schema", "schema.graphql", "--out", "gen", "--self-check"})

	require.NoError(t, cmd.Execute())

	content, err := afero.ReadFile(fs, "gen/gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(content), "//go:generate calibangen generate")
	assert.Contains(t, string(content), `"fmt"`)
}

func TestVersionCommand(t *testing.T) {
	fs := afero.NewMemMapFs()
	cmd := newRootCmd(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}
