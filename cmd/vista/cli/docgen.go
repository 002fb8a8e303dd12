package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-vista/vista/cmd/vista/internal/manifest"
)

var docgenOut string

var docgenCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Generate markdown documentation for declared views",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolve()
		if err != nil {
			return err
		}
		m, err := manifest.Load(resolved.ManifestPath)
		if err != nil {
			return err
		}

		doc := renderDocs(resolved.AppName, m)
		if docgenOut == "" {
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		}
		if err := os.WriteFile(docgenOut, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", docgenOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", docgenOut)
		return nil
	},
}

func init() {
	docgenCmd.Flags().StringVarP(&docgenOut, "out", "o", "", "output file (default: stdout)")
}

func renderDocs(appName string, m *manifest.Manifest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s views\n\n", appName)
	fmt.Fprintf(&sb, "Marker attribute: `%s`\n\n", m.Marker)

	for _, v := range m.Views {
		fmt.Fprintf(&sb, "## %s\n\n", v.Name)
		fmt.Fprintf(&sb, "```html\n<div %s=%q></div>\n```\n\n", m.Marker, v.Name)
		if len(v.Options) == 0 {
			sb.WriteString("No options.\n\n")
			continue
		}
		sb.WriteString("| Option | Attribute | Required | Default | Bind |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, opt := range v.Options {
			def := ""
			if opt.Default != nil {
				def = fmt.Sprintf("`%v`", opt.Default)
			}
			bind := ""
			if opt.Bind != "" {
				bind = fmt.Sprintf("`%s`", opt.Bind)
			}
			fmt.Fprintf(&sb, "| %s | `%s-%s` | %v | %s | %s |\n",
				opt.Name, m.Marker, opt.Name, opt.Required, def, bind)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
