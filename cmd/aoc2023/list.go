package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, id := range a.registry.IDs() {
				p, _ := a.registry.Get(id)
				fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Title)
			}

			return tw.Flush()
		},
	}
}
