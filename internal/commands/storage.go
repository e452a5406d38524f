package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/fieldwork/fsm_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/core/services"
	"github.com/fieldwork/fsm_backend/internal/platform/config"
	"github.com/fieldwork/fsm_backend/internal/platform/database"
	"github.com/fieldwork/fsm_backend/internal/repositories/database/pgsql"
	"github.com/fieldwork/fsm_backend/internal/repositories/database/sqlite"
)

// openRepositories connects to the configured store, applying migrations first
// when RUN_MIGRATIONS is set.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, error) {
	switch cfg.StorageDriver {
	case database.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if cfg.RunMigrations {
			if err := database.RunMigrations(db, database.DriverSQLite, database.Up, logger); err != nil {
				db.Close()
				return nil, err
			}
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), nil

	default:
		if cfg.RunMigrations {
			if err := migratePostgres(cfg.DatabaseURL, database.Up, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), nil
	}
}

func migratePostgres(databaseURL string, direction database.Direction, logger *slog.Logger) error {
	migrationDB, err := database.OpenPostgresSQL(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	return database.RunMigrations(migrationDB, database.DriverPostgres, direction, logger)
}

// openSQLDB opens a database/sql handle for the configured driver. Used by migrate.
func openSQLDB(cfg *config.Config) (*sql.DB, string, error) {
	if cfg.StorageDriver == database.DriverSQLite {
		db, err := database.OpenSQLite(cfg.SQLitePath)
		return db, database.DriverSQLite, err
	}
	db, err := database.OpenPostgresSQL(cfg.DatabaseURL)
	return db, database.DriverPostgres, err
}

// withServices opens storage, builds the service container and closes storage when fn returns.
func (a *app) withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	repos, err := openRepositories(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer repos.Close()

	return fn(services.NewContainer(repos, a.cfg.ChartMapping()))
}
