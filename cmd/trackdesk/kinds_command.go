package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackdesk/internal/catalog"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the entity kinds trackdesk manages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(catalog.Kinds()))
			for _, kind := range catalog.Kinds() {
				def := catalog.Get(kind)
				rows = append(rows, []string{
					string(kind),
					def.IDColumn,
					def.DisplayColumn,
					fmt.Sprintf("%d", len(def.Fields)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"KIND", "ID COLUMN", "DISPLAY", "FIELDS"}, rows))
			return nil
		},
	}
}
