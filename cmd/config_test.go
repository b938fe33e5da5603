package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		envConfigPath, envHTTPPort, envHealthPort, envDatabase, envRedisAddr,
		envCacheTTLMs, envBcryptCost, envLogLevel, envRealm,
	} {
		t.Setenv(name, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 5000, cfg.HTTPPort)
	assert.Equal(t, 5001, cfg.HealthPort)
	assert.Equal(t, "iotpersistence.db", cfg.Database)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30000, cfg.CacheTTLMs)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "iotpersistence", cfg.Realm)
}

func TestLoadConfig_YAML(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, `
http_port: 8080
health_port: 8081
database: /var/lib/iot/states.db
redis_addr: localhost:6379
bcrypt_cost: 12
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 8081, cfg.HealthPort)
	assert.Equal(t, "/var/lib/iot/states.db", cfg.Database)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, 30000, cfg.CacheTTLMs)
	assert.Equal(t, "iotpersistence", cfg.Realm)
}

func TestLoadConfig_PathFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envConfigPath, writeConfigFile(t, "http_port: 7000\n"))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.HTTPPort)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(writeConfigFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "http_port: 8080\ndatabase: from-file.db\n")
	t.Setenv(envHTTPPort, "9000")
	t.Setenv(envDatabase, "from-env.db")
	t.Setenv(envRedisAddr, "redis://other:6380")
	t.Setenv(envCacheTTLMs, "1500")
	t.Setenv(envRealm, "devices")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "from-env.db", cfg.Database)
	assert.Equal(t, "redis://other:6380", cfg.RedisAddr)
	assert.Equal(t, 1500, cfg.CacheTTLMs)
	assert.Equal(t, "devices", cfg.Realm)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "port not a number", env: map[string]string{envHTTPPort: "not-a-number"}},
		{name: "port out of range", env: map[string]string{envHTTPPort: "70000"}},
		{name: "bcrypt cost too low", env: map[string]string{envBcryptCost: "3"}},
		{name: "zero cache ttl", env: map[string]string{envCacheTTLMs: "0"}},
		{name: "unknown log level", env: map[string]string{envLogLevel: "verbose"}},
		{name: "same ports", env: map[string]string{envHTTPPort: "6000", envHealthPort: "6000"}},
		{name: "empty database", yaml: "database: \"\"\n"},
		{name: "unknown key", yaml: "listen: 8080\n"},
		{name: "malformed yaml", yaml: "http_port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeConfigFile(t, tt.yaml)
			}

			cfg, err := LoadConfig(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_HealthDisabledMayShareZero(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(writeConfigFile(t, "http_port: 0\nhealth_port: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.HTTPPort)
	assert.Zero(t, cfg.HealthPort)
}
