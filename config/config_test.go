package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "caliban-gen.yml")
	if err := os.WriteFile(cfgPath, []byte("schema: [schema.graphql]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfigFile(nested, []string{"caliban-gen.yml", ".caliban-gen.yml"})
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if got != cfgPath {
		t.Errorf("FindConfigFile() = %q, want %q", got, cfgPath)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := FindConfigFile(dir, []string{"caliban-gen.yml"}); err == nil {
		t.Error("FindConfigFile() expected error, got nil")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr bool
	}{
		{
			name:    "minimal config",
			content: "schema: [schema.graphql]\n",
			want: &Config{
				Schema:        []string{"schema.graphql"},
				EnableFmt:     true,
				EffectWrapper: "Effect",
			},
		},
		{
			name: "full config",
			content: `
schema: [schema.graphql]
scalar_mappings:
  OffsetDateTime: java.time.OffsetDateTime
additional_imports:
  - io.circe.Json
extensible_enums: true
split_files: true
package_name: test
`,
			want: &Config{
				Schema:            []string{"schema.graphql"},
				ScalarMappings:    map[string]string{"OffsetDateTime": "java.time.OffsetDateTime"},
				AdditionalImports: []string{"io.circe.Json"},
				ExtensibleEnums:   true,
				SplitFiles:        true,
				PackageName:       "test",
				EnableFmt:         true,
				EffectWrapper:     "Effect",
			},
		},
		{
			name:    "missing schema",
			content: "extensible_enums: true\n",
			wantErr: true,
		},
		{
			name:    "split files without package name",
			content: "schema: [schema.graphql]\nsplit_files: true\n",
			wantErr: true,
		},
		{
			name:    "unknown field rejected",
			content: "schema: [schema.graphql]\nnot_a_real_field: true\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("CALIBAN_GEN_SCALAR", "io.circe.Json")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "schema: [schema.graphql]\nscalar_mappings:\n  Json: ${CALIBAN_GEN_SCALAR}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ScalarMappings["Json"] != "io.circe.Json" {
		t.Errorf("ScalarMappings[Json] = %q, want expanded env value", got.ScalarMappings["Json"])
	}
}
