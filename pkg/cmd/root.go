package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jssort/jssort/pkg/config"
	"github.com/jssort/jssort/pkg/lint"
	"github.com/jssort/jssort/pkg/printer"
	"github.com/jssort/jssort/pkg/rule"
	"github.com/jssort/jssort/pkg/version"
)

const (
	UseDescription   = "jssort [flags] PATH"
	ShortDescription = "JS/TS import sorter - a linter for the order of import declarations"
	LongDescription  = `jssort is a command-line linter that checks ES import declarations against
a canonical order and can rewrite them in place.

Within the leading import block of each file, declarations are grouped as:
1. Wildcard imports (import * as foo)
2. Default imports (import foo)
3. Named imports (import { foo })

Each group is sorted alphabetically (case-insensitive) by the local name of
the first binding. An import that appears after other statements is reported
but never moved.

PATH can be either a single JavaScript/TypeScript file or a directory. When
a directory is specified, all source files in the directory and its
subdirectories are processed recursively (node_modules and hidden
directories are skipped).`
)

var (
	fix         bool
	configPath  string
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&fix, "fix", false, "Rewrite files in place instead of only reporting problems")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: .jssort.yaml in the target or project root)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if versionStr != "" && versionStr != "(devel)" {
			info.Version = versionStr
		}
		fmt.Println(info)
		return nil
	}

	path := args[0]

	cfg, err := config.Load(path, configPath)
	if err != nil {
		return err
	}
	// Flags override config file values.
	if cmd.Flags().Changed("fix") {
		cfg.Fix = fix
	}

	runner := lint.NewRunner(cfg, rule.NewSortImports(printer.New()))
	return runner.Run(context.Background(), path)
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
