package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath = "IOTPERSISTENCE_CONFIG"
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envHealthPort = "SERVICE_PORT_HEALTH"
	envDatabase   = "DATABASE_PATH"
	envRedisAddr  = "REDIS_ADDR"
	envCacheTTLMs = "CACHE_TTL_MS"
	envBcryptCost = "BCRYPT_COST"
	envLogLevel   = "LOG_LEVEL"
	envRealm      = "AUTH_REALM"
)

//go:embed config.cue
var configSchema string

// Config is the service configuration. Values come from the defaults, then the YAML
// file, then the environment.
type Config struct {
	// HTTPPort is the API port. 0 picks a free port.
	HTTPPort int `yaml:"http_port" json:"http_port"`
	// HealthPort is the gRPC health port. 0 disables the health server.
	HealthPort int    `yaml:"health_port" json:"health_port"`
	Database   string `yaml:"database" json:"database"`
	// RedisAddr enables the credential cache when set.
	RedisAddr  string `yaml:"redis_addr" json:"redis_addr"`
	CacheTTLMs int    `yaml:"cache_ttl_ms" json:"cache_ttl_ms"`
	BcryptCost int    `yaml:"bcrypt_cost" json:"bcrypt_cost"`
	LogLevel   string `yaml:"log_level" json:"log_level"`
	Realm      string `yaml:"realm" json:"realm"`
}

func defaultConfig() *Config {
	return &Config{
		HTTPPort:   5000,
		HealthPort: 5001,
		Database:   "iotpersistence.db",
		CacheTTLMs: 30000,
		BcryptCost: 10,
		LogLevel:   "info",
		Realm:      "iotpersistence",
	}
}

// LoadConfig builds the configuration. path may be empty, in which case
// IOTPERSISTENCE_CONFIG is consulted; without either only defaults and env apply.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path != "" {
		if err := loadYAMLConfig(path, config); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadYAMLConfig overlays the file at path onto config. Unknown keys are rejected.
func loadYAMLConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(config *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{envHTTPPort, &config.HTTPPort},
		{envHealthPort, &config.HealthPort},
		{envCacheTTLMs, &config.CacheTTLMs},
		{envBcryptCost, &config.BcryptCost},
	}
	for _, e := range ints {
		if v := os.Getenv(e.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", e.name, err)
			}
			*e.dst = n
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{envDatabase, &config.Database},
		{envRedisAddr, &config.RedisAddr},
		{envLogLevel, &config.LogLevel},
		{envRealm, &config.Realm},
	}
	for _, e := range strs {
		if v := os.Getenv(e.name); v != "" {
			*e.dst = v
		}
	}

	return nil
}

// validateConfig checks config against the embedded CUE schema.
func validateConfig(config *Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	value := def.Unify(ctx.Encode(config))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if config.HealthPort != 0 && config.HealthPort == config.HTTPPort {
		return fmt.Errorf("invalid configuration: health_port must differ from http_port")
	}
	return nil
}
