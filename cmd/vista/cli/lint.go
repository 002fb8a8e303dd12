package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-vista/vista/cmd/vista/internal/manifest"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the view manifest",
	Long: `Lint loads the project's view manifest and reports declaration
problems: missing or malformed markers, duplicate views or options,
required options carrying defaults, and invalid keypath expressions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolve()
		if err != nil {
			return err
		}
		m, err := manifest.Load(resolved.ManifestPath)
		if err != nil {
			return err
		}

		issues := m.Validate()
		for _, issue := range issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", resolved.ManifestPath, issue)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d issue(s) found", len(issues))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d view(s), no issues\n", resolved.ManifestPath, len(m.Views))
		return nil
	},
}
