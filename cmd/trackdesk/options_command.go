package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOptionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "options <kind> <field>",
		Short: "Show the resolved options for a choice field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			return ctx.withApp(func(a *app) error {
				options, err := a.engine.Options(cmd.Context(), kind, args[1])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(options))
				for _, opt := range options {
					label := opt.Label
					if label == "" {
						label = "(unset)"
					}
					rows = append(rows, []string{opt.ID, label})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "LABEL"}, rows))
				return nil
			})
		},
	}
}
