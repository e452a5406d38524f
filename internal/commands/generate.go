package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
)

func newGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the journal entry of a business event",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "invoice <invoice-id>",
			Short: "Generate the entry of an issued invoice",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
					entryID, err := svc.Generators.GenerateForInvoice(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), entryID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "job <job-id>",
			Short: "Generate the entry of a completed job",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
					entryID, err := svc.Generators.GenerateForJobCompletion(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), entryID)
					return nil
				})
			},
		},
	)
	return cmd
}
