package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 50052, cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, ":50052", cfg.GRPCAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRPC_PORT=6000\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	// Переменная окружения важнее файла
	t.Setenv("LOG_LEVEL", "warn")
	// godotenv выставляет переменные процесса, t.Setenv вернёт их после теста
	t.Setenv("GRPC_PORT", "")
	os.Unsetenv("GRPC_PORT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:          8080,
			GRPCPort:          50052,
			LogLevel:          "info",
			LogFormat:         "json",
			ShutdownTimeout:   time.Second,
			ReadHeaderTimeout: time.Second,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero http port", func(c *Config) { c.HTTPPort = 0 }},
		{"huge grpc port", func(c *Config) { c.GRPCPort = 70000 }},
		{"same ports", func(c *Config) { c.GRPCPort = c.HTTPPort }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
		{"negative header timeout", func(c *Config) { c.ReadHeaderTimeout = -time.Second }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid()
			test.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
