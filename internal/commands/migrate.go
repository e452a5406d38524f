package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldwork/fsm_backend/internal/platform/database"
)

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.migrate(database.Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.migrate(database.Down)
			},
		},
	)
	return cmd
}

func (a *app) migrate(direction database.Direction) error {
	db, driver, err := openSQLDB(a.cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db, driver, direction, a.logger); err != nil {
		return fmt.Errorf("migrate %s: %w", driver, err)
	}
	return nil
}
