package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a record after confirmation",
		Long: `Delete a record after confirmation.

Deletion is the one irreversible operation, so it always runs as a
two-step handshake: the target is announced first, then removed only on
an explicit confirmation. --yes supplies that confirmation up front.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			return ctx.withApp(func(a *app) error {
				pending, err := a.engine.RequestDelete(cmd.Context(), a.session, kind, id)
				if err != nil {
					return err
				}

				if !yesFlag {
					fmt.Fprintf(cmd.OutOrStdout(), "delete %s %q (%s)? [y/N]: ", pending.Kind, pending.DisplayName, pending.ID)
					reader := bufio.NewReader(cmd.InOrStdin())
					answer, _ := reader.ReadString('\n')
					if !strings.EqualFold(strings.TrimSpace(answer), "y") {
						a.engine.CancelDelete(a.session, kind)
						fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
						return nil
					}
				}

				result, err := a.engine.ConfirmDelete(cmd.Context(), a.session, kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", result.Kind, result.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Confirm the deletion without prompting")
	return cmd
}
