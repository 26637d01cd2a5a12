package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var fieldArgs []string
	var attachArgs []string

	cmd := &cobra.Command{
		Use:   "create <kind>",
		Short: "Create a record of an entity kind",
		Long: `Create a record of an entity kind.

Field values are supplied as repeated --field name=value flags. Choice
fields accept either the raw id or the "id — name" display form. Media
fields are attached with --attach field=path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			sub, err := parseFieldArgs(kind, fieldArgs)
			if err != nil {
				return err
			}
			sub.Attachments, err = parseAttachArgs(kind, attachArgs)
			if err != nil {
				return err
			}
			return ctx.withApp(func(a *app) error {
				result, err := a.engine.Create(cmd.Context(), kind, sub)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s\n", result.Kind, result.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&fieldArgs, "field", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&attachArgs, "attach", nil, "Attachment as field=path (repeatable)")
	return cmd
}
