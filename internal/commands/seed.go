package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldwork/fsm_backend/internal/chart"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
)

func newSeedAccountsCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-accounts",
		Short: "Upsert the chart of accounts",
		Long: `Upserts a chart of accounts by code. Without --file the built-in
field-service chart is used. Existing accounts keep their ids.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := loadChart(file)
			if err != nil {
				return err
			}

			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				n, err := svc.Accounts.SeedAccounts(cmd.Context(), accounts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d accounts\n", n)

				all, err := svc.Accounts.ListAccounts(cmd.Context())
				if err != nil {
					return err
				}
				if missing := chart.MissingCodes(all, a.cfg.ChartMapping()); len(missing) > 0 {
					a.logger.Warn("Configured account codes are not postable", slog.String("codes", strings.Join(missing, ",")))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML chart of accounts to seed instead of the built-in one")
	return cmd
}

func loadChart(file string) ([]domain.Account, error) {
	if file == "" {
		return chart.DefaultChart()
	}
	return chart.LoadChart(file)
}
