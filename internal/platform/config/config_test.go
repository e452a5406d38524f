package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, domain.DefaultChartMapping(), cfg.ChartMapping())
}

func TestFromViper_ChartOverrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"COA_ACCOUNTS_RECEIVABLE": "1105",
		"COA_INVENTORY":           "1250",
	}))

	require.NoError(t, err)
	chart := cfg.ChartMapping()
	assert.Equal(t, "1105", chart.AccountsReceivable)
	assert.Equal(t, "1250", chart.Inventory)
	assert.Equal(t, "4000", chart.Revenue)
}

func TestFromViper_EmptyChartCodeRejected(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"COA_REVENUE": " "}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "COA_REVENUE")
}

func TestFromViper_StorageDriver(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": " SQLite "}))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.StorageDriver)

	_, err = fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": "mysql"}))
	assert.Error(t, err)

	_, err = fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": "sqlite", "SQLITE_PATH": ""}))
	assert.Error(t, err)
}

func TestFromViper_ProductionRequiresSecret(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err)

	cfg, err := fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true, "JWT_SECRET": "s3cr3t"}))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "DEBUG"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warning"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: ""}).SlogLevel())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
