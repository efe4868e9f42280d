// Package config loads SDK settings for the command-line tools. Values are
// layered: built-in defaults, then an optional YAML file, then BOOKING_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/client"
)

const (
	// PathEnvVar overrides the config file location.
	PathEnvVar  = "BOOKING_CONFIG"
	DefaultPath = "bookingsdk.yaml"
	envPrefix   = "BOOKING_"
)

type Config struct {
	Client client.Config `koanf:"client"`
	Log    LogConfig     `koanf:"log"`
	Mock   MockConfig    `koanf:"mock"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MockConfig configures cmd/mockplatform.
type MockConfig struct {
	Addr    string `koanf:"addr"`
	Token   string `koanf:"token"`
	Latency string `koanf:"latency"`
}

func defaultConfig() Config {
	return Config{
		Client: client.DefaultConfig(),
		Log:    LogConfig{Level: "warn", Format: "json"},
		Mock:   MockConfig{Addr: ":8080"},
	}
}

// envMappings ties each supported variable, minus the BOOKING_ prefix, to
// its config path. Anything else is ignored.
var envMappings = map[string]string{
	"base_url":              "client.base_url",
	"token":                 "client.token",
	"user_agent":            "client.user_agent",
	"timeout":               "client.timeout",
	"max_retries":           "client.max_retries",
	"retry_delays":          "client.retry_delays",
	"rate_limit_rps":        "client.rate_limit.requests_per_second",
	"rate_limit_burst":      "client.rate_limit.burst",
	"breaker_enabled":       "client.breaker.enabled",
	"breaker_max_requests":  "client.breaker.max_requests",
	"breaker_interval":      "client.breaker.interval",
	"breaker_timeout":       "client.breaker.timeout",
	"breaker_failure_ratio": "client.breaker.failure_ratio",
	"breaker_min_requests":  "client.breaker.min_requests",
	"cache_enabled":         "client.cache.enabled",
	"cache_backend":         "client.cache.backend",
	"cache_ttl":             "client.cache.ttl",
	"cache_prefixes":        "client.cache.prefixes",
	"redis_host":            "client.cache.redis_host",
	"redis_port":            "client.cache.redis_port",
	"redis_password":        "client.cache.redis_password",
	"redis_db":              "client.cache.redis_db",
	"strict_ssr_codes":      "client.strict_ssr_codes",
	"version_availability":  "client.versions.availability",
	"version_trip":          "client.versions.trip",
	"version_booking":       "client.versions.booking",
	"version_bundle":        "client.versions.bundle",
	"version_seat":          "client.versions.seat",
	"version_equipment":     "client.versions.equipment",
	"version_message":       "client.versions.message",
	"version_queue":         "client.versions.queue",
	"version_addons":        "client.versions.addons",
	"version_navigation":    "client.versions.navigation",
	"version_user":          "client.versions.user",
	"version_payment":       "client.versions.payment",
	"log_level":             "log.level",
	"log_format":            "log.format",
	"log_caller":            "log.caller",
	"mock_addr":             "mock.addr",
	"mock_token":            "mock.token",
	"mock_latency":          "mock.latency",
}

func init() {
	for module := range client.DefaultAPIVersions {
		envMappings["rate_limit_"+module+"_rps"] = "client.rate_limit.modules." + module + ".requests_per_second"
		envMappings["rate_limit_"+module+"_burst"] = "client.rate_limit.modules." + module + ".burst"
	}
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"client.retry_delays",
	"client.cache.prefixes",
}

// Load reads the layered configuration and validates the client section.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Client.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Logging converts the log section for logging.Init.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	if c.Log.Level != "" {
		lc.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		lc.Format = c.Log.Format
	}
	lc.Caller = c.Log.Caller
	return lc
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if key == "config" {
		return ""
	}
	return envMappings[key]
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := make([]string, 0)
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}
