// Package cli provides the command-line interface for the Vista tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-vista/vista/cmd/vista/internal/config"
)

// Version information set at build time.
var (
	Version = "0.1.0-dev"
)

var (
	flagDir      string
	flagManifest string
)

var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Vista - view lifecycle tooling",
	Long: `Vista manages view manifests for projects built on the Vista
view lifecycle framework.

A manifest (views.yaml by default) declares the views a project exposes
to markup: their names, content, and option declarations. Vista
validates manifests, lists declared views, and generates documentation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", "", "project directory (default: nearest go.mod)")
	rootCmd.PersistentFlags().StringVarP(&flagManifest, "manifest", "m", "", "manifest path (default: from vista.yaml, else views.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(docgenCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vista version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "vista version %s\n", Version)
		return nil
	},
}

// resolve locates the project root and resolves configuration,
// honoring the --dir and --manifest flags.
func resolve() (*config.Resolved, error) {
	dir := flagDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if flagManifest != "" {
		resolved.ManifestPath = flagManifest
	}
	return resolved, nil
}
