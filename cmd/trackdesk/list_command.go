package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackdesk/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List all records of an entity kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			return ctx.withApp(func(a *app) error {
				def := catalog.Get(kind)
				rows, err := a.store.List(cmd.Context(), def.Worksheet())
				if err != nil {
					return err
				}

				if jsonFlag {
					return writeJSON(cmd, rows)
				}

				header := def.Header()
				cells := make([][]string, 0, len(rows))
				for _, rec := range rows {
					values := rec.Values(header)
					for i, value := range values {
						values[i] = truncate(value, 40)
					}
					cells = append(cells, values)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(header, cells))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}
