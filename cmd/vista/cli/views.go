package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-vista/vista/cmd/vista/internal/manifest"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List views declared in the manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolve()
		if err != nil {
			return err
		}
		m, err := manifest.Load(resolved.ManifestPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", resolved.AppName, resolved.ModulePath)
		fmt.Fprintf(out, "marker: %s\n\n", m.Marker)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VIEW\tOPTION\tREQUIRED\tDEFAULT\tBIND")
		for _, v := range m.Views {
			if len(v.Options) == 0 {
				fmt.Fprintf(w, "%s\t-\t\t\t\n", v.Name)
				continue
			}
			for i, opt := range v.Options {
				name := v.Name
				if i > 0 {
					name = ""
				}
				def := ""
				if opt.Default != nil {
					def = fmt.Sprintf("%v", opt.Default)
				}
				fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", name, opt.Name, opt.Required, def, opt.Bind)
			}
		}
		return w.Flush()
	},
}
