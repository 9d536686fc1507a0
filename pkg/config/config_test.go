package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.Session.Duration)
	assert.Equal(t, 5*time.Minute, cfg.Session.LowTimeThreshold)
	assert.Equal(t, time.Minute, cfg.Session.LockCheckInterval)
	assert.Equal(t, time.Second, cfg.Session.Tick)
	assert.Equal(t, "/", cfg.Session.LandingPath)
	assert.Equal(t, 10*time.Minute, cfg.Session.PageIdleTimeout)
	assert.Equal(t, "bolt", cfg.Store.Driver)
	assert.Equal(t, ":9000", cfg.Server.GRPCAddr)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "zapdine.yaml", `
session:
  duration: 1h
  low_time_threshold: 10m
store:
  driver: redis
  redis_url: redis://localhost:6379/0
server:
  cors_origins: ["https://menu.example"]
  public_base_url: https://menu.example
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Session.Duration)
	assert.Equal(t, 10*time.Minute, cfg.Session.LowTimeThreshold)
	// untouched keys keep their defaults
	assert.Equal(t, time.Second, cfg.Session.Tick)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, []string{"https://menu.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "zapdine.yaml", "session:\n  duration: 1h\n")
	t.Setenv("ZAPDINE_SESSION_DURATION", "90m")
	t.Setenv("ZAPDINE_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://localhost/zapdine")
	t.Setenv("ZAPDINE_LOG_CONSOLE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.Session.Duration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres://localhost/zapdine", cfg.Database.URL)
	assert.False(t, cfg.Log.Console)
}

func TestBadEnvValue(t *testing.T) {
	t.Setenv("ZAPDINE_TICK", "soon")
	_, err := Load("")
	assert.ErrorContains(t, err, "ZAPDINE_TICK")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero duration", func(c *Config) { c.Session.Duration = 0 }, "session.duration"},
		{"low time not below duration", func(c *Config) { c.Session.LowTimeThreshold = c.Session.Duration }, "session.low_time_threshold"},
		{"tick above duration", func(c *Config) { c.Session.Duration = time.Second; c.Session.LowTimeThreshold = time.Millisecond; c.Session.Tick = 2 * time.Second }, "session.tick"},
		{"unknown driver", func(c *Config) { c.Store.Driver = "etcd" }, "store.driver"},
		{"redis without url", func(c *Config) { c.Store.Driver = "redis" }, "store.redis_url"},
		{"bolt without path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"bad landing path", func(c *Config) { c.Session.LandingPath = "home" }, "session.landing_path"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"relative base url", func(c *Config) { c.Server.PublicBaseURL = "" }, "server.public_base_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "ZAPDINE_DOTENV_CHECK=loaded\n")
	t.Setenv("ZAPDINE_DOTENV_CHECK", "")
	os.Unsetenv("ZAPDINE_DOTENV_CHECK")

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv("ZAPDINE_DOTENV_CHECK"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "grpc_addr", snake("GRPCAddr"))
	assert.Equal(t, "public_base_url", snake("PublicBaseURL"))
	assert.Equal(t, "nats", snake("NATS"))
	assert.Equal(t, "low_time_threshold", snake("LowTimeThreshold"))
}
