package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string `mapstructure:"PGSQL_URL"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	SQLitePath    string `mapstructure:"SQLITE_PATH"`
	RunMigrations bool   `mapstructure:"RUN_MIGRATIONS"`

	Port               string   `mapstructure:"PORT"`
	IsProduction       bool     `mapstructure:"IS_PRODUCTION"`
	LogLevel           string   `mapstructure:"LOG_LEVEL"`
	JWTSecret          string   `mapstructure:"JWT_SECRET"`
	RateLimit          string   `mapstructure:"RATE_LIMIT"` // ulule/limiter formatted, e.g. "100-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Chart-of-accounts codes the generators post to
	AccountsReceivableCode string `mapstructure:"COA_ACCOUNTS_RECEIVABLE"`
	RevenueCode            string `mapstructure:"COA_REVENUE"`
	LaborExpenseCode       string `mapstructure:"COA_LABOR_EXPENSE"`
	COGSCode               string `mapstructure:"COA_COGS"`
	EquipmentExpenseCode   string `mapstructure:"COA_EQUIPMENT_EXPENSE"`
	InventoryCode          string `mapstructure:"COA_INVENTORY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values from the environment override the .env file, which overrides the defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	chart := domain.DefaultChartMapping()

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORAGE_DRIVER", "postgres")
	v.SetDefault("SQLITE_PATH", "fsm_ledger.db")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("COA_ACCOUNTS_RECEIVABLE", chart.AccountsReceivable)
	v.SetDefault("COA_REVENUE", chart.Revenue)
	v.SetDefault("COA_LABOR_EXPENSE", chart.LaborExpense)
	v.SetDefault("COA_COGS", chart.CostOfGoodsSold)
	v.SetDefault("COA_EQUIPMENT_EXPENSE", chart.EquipmentExpense)
	v.SetDefault("COA_INVENTORY", chart.Inventory)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		StorageDriver:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		SQLitePath:             v.GetString("SQLITE_PATH"),
		RunMigrations:          v.GetBool("RUN_MIGRATIONS"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AccountsReceivableCode: v.GetString("COA_ACCOUNTS_RECEIVABLE"),
		RevenueCode:            v.GetString("COA_REVENUE"),
		LaborExpenseCode:       v.GetString("COA_LABOR_EXPENSE"),
		COGSCode:               v.GetString("COA_COGS"),
		EquipmentExpenseCode:   v.GetString("COA_EQUIPMENT_EXPENSE"),
		InventoryCode:          v.GetString("COA_INVENTORY"),
	}

	switch cfg.StorageDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			slog.Warn("PGSQL_URL environment variable not set.")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORAGE_DRIVER is sqlite")
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (expected postgres or sqlite)", cfg.StorageDriver)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validateChart(cfg.ChartMapping()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateChart(c domain.ChartMapping) error {
	codes := map[string]string{
		"COA_ACCOUNTS_RECEIVABLE": c.AccountsReceivable,
		"COA_REVENUE":             c.Revenue,
		"COA_LABOR_EXPENSE":       c.LaborExpense,
		"COA_COGS":                c.CostOfGoodsSold,
		"COA_EQUIPMENT_EXPENSE":   c.EquipmentExpense,
		"COA_INVENTORY":           c.Inventory,
	}
	for key, code := range codes {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// ChartMapping returns the account codes the generators post to.
func (c *Config) ChartMapping() domain.ChartMapping {
	return domain.ChartMapping{
		AccountsReceivable: c.AccountsReceivableCode,
		Revenue:            c.RevenueCode,
		LaborExpense:       c.LaborExpenseCode,
		CostOfGoodsSold:    c.COGSCode,
		EquipmentExpense:   c.EquipmentExpenseCode,
		Inventory:          c.InventoryCode,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
