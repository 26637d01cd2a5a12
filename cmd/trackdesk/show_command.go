package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackdesk/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			return ctx.withApp(func(a *app) error {
				def := catalog.Get(kind)
				rec, found, err := a.store.Get(cmd.Context(), def.Worksheet(), id)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("%s %q not found", kind, id)
				}

				if jsonFlag {
					return writeJSON(cmd, rec)
				}

				rows := make([][]string, 0, len(def.Header()))
				for _, column := range def.Header() {
					rows = append(rows, []string{column, rec[column]})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"COLUMN", "VALUE"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")
	return cmd
}
