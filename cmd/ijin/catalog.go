package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/HendryAvila/ijin/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "List the reference figures and their trait vectors",
		Long:  "Lists every reference figure, or only the one named by the argument.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			profiles := c.Profiles()
			if len(args) == 1 {
				p, ok := c.Find(args[0])
				if !ok {
					return fmt.Errorf("no figure named %q in the catalog", args[0])
				}
				profiles = []catalog.Profile{p}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), profiles)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\t実行力\t人間性\t表現力\t魅力\t外見力")
			for _, p := range profiles {
				v := p.Traits
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					p.Name, p.Label(), v.Execution, v.Humanity, v.Style, v.Charm, v.Appearance)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
