package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var fieldArgs []string
	var attachArgs []string

	cmd := &cobra.Command{
		Use:   "update <kind> <id>",
		Short: "Update the supplied fields of an existing record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			sub, err := parseFieldArgs(kind, fieldArgs)
			if err != nil {
				return err
			}
			sub.Attachments, err = parseAttachArgs(kind, attachArgs)
			if err != nil {
				return err
			}
			if len(sub.Values) == 0 && len(sub.Multi) == 0 && len(sub.Attachments) == 0 {
				return fmt.Errorf("nothing to update, pass --field or --attach")
			}
			return ctx.withApp(func(a *app) error {
				result, err := a.engine.Update(cmd.Context(), kind, id, sub)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s\n", result.Kind, result.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&fieldArgs, "field", nil, "Field value as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&attachArgs, "attach", nil, "Attachment as field=path (repeatable)")
	return cmd
}
