package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "data/users-data.json", cfg.Storage.Path)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout())
	assert.False(t, cfg.JWT.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9000"
storage:
  driver: redis
  redis_addr: cache:6379
  redis_db: 2
jwt:
  enabled: true
  secret: file-secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("STORAGE_REDIS_DB", "5")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 5, cfg.Storage.RedisDB)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.ElementsMatch(t, []string{"SERVER_PORT", "STORAGE_REDIS_DB"}, cfg.EnvOverrides)
}

func TestLoadConfig_PrefixedEnvWins(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STUDX_LOG_LEVEL", "debug")
	t.Setenv("STUDX_CORS_ALLOWED_ORIGINS", "https://studx.edu.tr, http://localhost:5500,")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://studx.edu.tr", "http://localhost:5500"}, cfg.Server.AllowedOrigins)
	assert.Contains(t, cfg.EnvOverrides, "STUDX_LOG_LEVEL")
	assert.NotContains(t, cfg.EnvOverrides, "LOG_LEVEL")
}

func TestDurationsFallBack(t *testing.T) {
	cfg := Default()
	cfg.Storage.Timeout = "-1s"
	cfg.JWT.AccessTokenExpiration = "forever"

	assert.Equal(t, 5*time.Second, cfg.StorageTimeout())
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "mongo"}},
		{"postgres without dsn", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"jwt without secret", map[string]string{"JWT_ENABLED": "true"}},
		{"bad timeout", map[string]string{"STORAGE_TIMEOUT": "soon"}},
		{"bad bool", map[string]string{"METRICS_ENABLED": "maybe"}},
		{"bad int", map[string]string{"STORAGE_REDIS_DB": "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}
