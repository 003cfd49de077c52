package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"

	calibangen "github.com/nicoburniske/caliban-gen"
	"github.com/nicoburniske/caliban-gen/config"
	"github.com/nicoburniske/caliban-gen/format"
	"github.com/nicoburniske/caliban-gen/schemadoc"
)

// goGenerateStub is a //go:generate anchor file dropped alongside the
// generated client output, for editors/build tools that expect one Go file
// per generated-output directory. --self-check runs it through goimports
// before writing it, the same way gqlgenc's querygen plugin formats its own
// emitted Go files with golang.org/x/tools/imports.
const goGenerateStub = `package gen

import "fmt"

//go:generate calibangen generate
func init() { fmt.Sprint() }
`

type generateFlags struct {
	configPath      string
	schemas         []string
	outDir          string
	packageName     string
	splitFiles      bool
	extensibleEnums bool
	scalarMappings  map[string]string
	formatterCmd    string
	watch           bool
	selfCheck       bool
}

func newGenerateCmd(fs afero.Fs) *cobra.Command {
	flags := &generateFlags{scalarMappings: map[string]string{}}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client source from a GraphQL schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.watch {
				return watchAndGenerate(fs, cmd, flags)
			}
			return runGenerate(fs, cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML config file (searched for automatically when omitted)")
	cmd.Flags().StringSliceVar(&flags.schemas, "schema", nil, "schema file path (repeatable); overrides the config file's schema list")
	cmd.Flags().StringVar(&flags.outDir, "out", ".", "directory to write generated files into")
	cmd.Flags().StringVar(&flags.packageName, "package-name", "", "target package name for --split-files (derived from the first schema file's name when omitted)")
	cmd.Flags().BoolVar(&flags.splitFiles, "split-files", false, "emit one file per declaration instead of a single aggregated file")
	cmd.Flags().BoolVar(&flags.extensibleEnums, "extensible-enums", false, "add a catch-all __Unknown variant to every enum")
	cmd.Flags().StringToStringVar(&flags.scalarMappings, "scalar-mapping", nil, "scalarName=targetType mapping (repeatable)")
	cmd.Flags().StringVar(&flags.formatterCmd, "formatter", "", "external formatter command to pipe output through (e.g. scalafmt); disables formatting when empty")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "watch the schema files and regenerate on change")
	cmd.Flags().BoolVar(&flags.selfCheck, "self-check", false, "also write a goimports-formatted go:generate anchor file into --out")

	return cmd
}

// resolveConfig merges a loaded config file (if any) with the flags given on
// the command line; flags always win over the file.
func resolveConfig(fs afero.Fs, flags *generateFlags) (*config.Config, error) {
	cfg := config.Default()

	path := flags.configPath
	if path == "" {
		if found, err := findConfigFileFS(fs, "."); err == nil {
			path = found
		}
	}
	if path != "" {
		raw, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		cfg, err = config.ParseBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if len(flags.schemas) > 0 {
		cfg.Schema = flags.schemas
	}
	if flags.packageName != "" {
		cfg.PackageName = flags.packageName
	}
	if flags.splitFiles {
		cfg.SplitFiles = true
	}
	if flags.extensibleEnums {
		cfg.ExtensibleEnums = true
	}
	for name, target := range flags.scalarMappings {
		if cfg.ScalarMappings == nil {
			cfg.ScalarMappings = map[string]string{}
		}
		cfg.ScalarMappings[name] = target
	}

	if len(cfg.Schema) == 0 {
		return nil, fmt.Errorf("no schema specified: pass --schema or provide a config file")
	}

	// A split-files run always needs a package name; derive a reasonable
	// default from the first schema file's base name (Go-identifier-cased
	// via gqlgen's own naming convention, then lowercased to the target's
	// package-naming style) rather than failing outright.
	if cfg.SplitFiles && cfg.PackageName == "" {
		cfg.PackageName = strings.ToLower(templates.ToGo(schemaBaseName(cfg.Schema[0])))
	}

	return cfg, nil
}

// schemaBaseName extracts a schema file's base name and normalizes it to the
// underscore-delimited shape templates.ToGo expects (it does not split on
// hyphens), e.g. "my-schema.graphql" -> "my_schema".
func schemaBaseName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, "-", "_")
}

func findConfigFileFS(fs afero.Fs, dir string) (string, error) {
	names := []string{".calibangen.yml", "calibangen.yml", ".calibangen.yaml", "calibangen.yaml"}
	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if exists, _ := afero.Exists(fs, candidate); exists {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no config file found (looked for %v)", names)
		}
		dir = parent
	}
}

func loadSchemaFS(fs afero.Fs, paths []string) (*schemadoc.Document, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", path, err)
		}
		sources = append(sources, &ast.Source{Input: string(content), Name: path})
	}
	return schemadoc.ParseSources(sources)
}

func formatterFor(flags *generateFlags) format.Formatter {
	if flags.formatterCmd == "" {
		return format.Noop
	}
	parts := strings.Fields(flags.formatterCmd)
	return format.NewExecFormatter(parts[0], parts[1:]...)
}

func runGenerate(fs afero.Fs, cmd *cobra.Command, flags *generateFlags) error {
	cfg, err := resolveConfig(fs, flags)
	if err != nil {
		return err
	}

	doc, err := loadSchemaFS(fs, cfg.Schema)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	files, err := calibangen.Write(doc, formatterFor(flags),
		calibangen.WithPackageName(cfg.PackageName),
		calibangen.WithScalarMappings(cfg.ScalarMappings),
		calibangen.WithAdditionalImports(cfg.AdditionalImports),
		calibangen.WithSplitFiles(cfg.SplitFiles),
		calibangen.WithExtensibleEnums(cfg.ExtensibleEnums),
		calibangen.WithFmt(flags.formatterCmd != ""),
	)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := fs.MkdirAll(flags.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, f := range files {
		outPath := filepath.Join(flags.outDir, f.Name+".scala")
		if err := afero.WriteFile(fs, outPath, []byte(f.Source), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), outPath)
	}

	if flags.selfCheck {
		formatted, err := (format.GoImportsFormatter{}).Format("gen.go", []byte(goGenerateStub))
		if err != nil {
			return fmt.Errorf("self-check: %w", err)
		}
		stubPath := filepath.Join(flags.outDir, "gen.go")
		if err := afero.WriteFile(fs, stubPath, formatted, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", stubPath, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), stubPath)
	}

	return nil
}

func watchAndGenerate(fs afero.Fs, cmd *cobra.Command, flags *generateFlags) error {
	if err := runGenerate(fs, cmd, flags); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	cfg, err := resolveConfig(fs, flags)
	if err != nil {
		return err
	}
	for _, schema := range cfg.Schema {
		if err := watcher.Add(schema); err != nil {
			return fmt.Errorf("watch %s: %w", schema, err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s changed, regenerating\n", event.Name)
			if err := runGenerate(fs, cmd, flags); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
}
