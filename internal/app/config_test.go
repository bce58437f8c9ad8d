package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCfg_Defaults(t *testing.T) {
	t.Setenv("ESTIMATOR_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadCfg()
	require.NoError(t, err)
	assert.Equal(t, JournalNone, cfg.Journal.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "https://api.coingecko.com", cfg.Coingecko.URL)
	assert.Equal(t, "https://arweave.net", cfg.Arweave.URL)
	assert.Equal(t, 10*time.Second, cfg.Arweave.Timeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Grpc.Addr())
	assert.False(t, cfg.AdminEnabled)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoadCfg_FromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"ESTIMATOR_CACHE_TTL=5s\n"+
			"ESTIMATOR_JOURNAL_BACKEND=redis\n"+
			"ESTIMATOR_ADMIN_ENABLED=true\n"+
			"ESTIMATOR_LOG_LEVEL=debug\n",
	), 0o600))
	t.Setenv("ESTIMATOR_ENV_FILE", envFile)
	// godotenv не перетирает уже заданные переменные; t.Setenv вернёт их после теста.
	for _, k := range []string{"ESTIMATOR_CACHE_TTL", "ESTIMATOR_JOURNAL_BACKEND", "ESTIMATOR_ADMIN_ENABLED", "ESTIMATOR_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadCfg()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
	assert.Equal(t, JournalRedis, cfg.Journal.Backend)
	assert.True(t, cfg.AdminEnabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "по умолчанию", mutate: func(c *Config) {}, wantErr: false},
		{name: "неизвестный журнал", mutate: func(c *Config) { c.Journal.Backend = "sqlite" }, wantErr: true},
		{name: "отрицательный ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: true},
		{name: "clickhouse без kafka", mutate: func(c *Config) { c.ClickHouse.Enabled = true }, wantErr: true},
		{name: "clickhouse с kafka", mutate: func(c *Config) { c.ClickHouse.Enabled = true; c.Kafka.Enabled = true }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Journal: JournalConfig{Backend: JournalNone}}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
