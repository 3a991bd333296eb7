package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/scaffold"
	"github.com/go-drift/motion/cmd/motion/internal/templates"
	"github.com/go-drift/motion/pkg/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold motion.yaml and a demo program into the current module",
		Long: `Scaffold a motion setup into the enclosing Go module:

  - motion.yaml with defaults, a sample preset, and demo settings
  - motion-demo/main.go, a runnable demo panel

The module is located by walking up to the nearest go.mod. Existing
files are left alone unless --force is given.

Examples:
  motion init
  motion init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root, err := scaffold.FindModuleRoot(cwd)
			if err != nil {
				return err
			}
			modulePath, err := scaffold.ModulePath(root)
			if err != nil {
				return err
			}

			written, err := scaffoldFiles(cwd, modulePath, force)
			if err != nil {
				return err
			}
			for _, path := range written {
				logger.Info("wrote", "path", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nNext steps:\n  go mod tidy\n  go run ./motion-demo\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

// scaffoldFiles writes motion.yaml and motion-demo/main.go into dir.
// It has no side effects beyond the filesystem, so tests can call it
// directly. Returns the paths written.
func scaffoldFiles(dir, modulePath string, force bool) ([]string, error) {
	data := &templates.Data{
		ModulePath: modulePath,
		ModuleName: scaffold.ModuleName(modulePath),
	}

	files := []struct {
		template string
		dest     string
	}{
		{"init/motion.yaml.tmpl", config.FileName},
		{"init/main.go.tmpl", filepath.Join("motion-demo", "main.go")},
	}

	var written []string
	for _, f := range files {
		dest := filepath.Join(dir, f.dest)
		if _, err := os.Stat(dest); err == nil && !force {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", f.dest)
		}

		contents, err := templates.Render(f.template, data)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(f.dest), err)
		}
		if err := os.WriteFile(dest, []byte(contents), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.dest, err)
		}
		written = append(written, f.dest)
	}
	return written, nil
}
