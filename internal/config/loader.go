// Package config provides configuration loading, defaults, and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by every setting.
const envPrefix = "AYURCHEM"

// Sentinel errors returned (wrapped) by Load.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigParseError   = errors.New("config parse error")
	ErrConfigValidation   = errors.New("config validation failed")
)

// bindableKeys lists every leaf key so that AYURCHEM_* variables override
// values even when the key is absent from the YAML file.  viper only consults
// the environment for keys it already knows about during Unmarshal.
var bindableKeys = []string{
	"server.addr", "server.read_timeout", "server.write_timeout",
	"server.shutdown_timeout", "server.max_body_size",
	"log.level", "log.format", "log.output_paths", "log.error_output_paths",
	"pubchem.base_url", "pubchem.timeout", "pubchem.min_interval",
	"pubchem.offline", "pubchem.user_agent",
	"redis.enabled", "redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.dial_timeout", "redis.read_timeout", "redis.write_timeout",
	"redis.ttl", "redis.key_prefix",
	"neo4j.enabled", "neo4j.uri", "neo4j.user", "neo4j.password", "neo4j.database",
	"neo4j.max_connection_pool_size", "neo4j.connection_timeout",
	"kafka.enabled", "kafka.brokers", "kafka.topic", "kafka.batch_timeout",
	"kafka.write_timeout",
	"metrics.enabled", "metrics.namespace", "metrics.path",
	"cors.allowed_origins", "cors.allowed_methods", "cors.max_age",
}

// newViper builds a Viper instance with YAML file type, the AYURCHEM_ env
// prefix and a "." -> "_" key replacer so that "redis.addr" resolves to
// AYURCHEM_REDIS_ADDR.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range bindableKeys {
		_ = v.BindEnv(key)
	}
	v.SetDefault("metrics.enabled", true)
	return v
}

// Load reads the YAML file at configPath, merges AYURCHEM_* overrides,
// applies defaults and validates.  An empty configPath is equivalent to
// LoadFromEnv.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w: %s", ErrConfigFileNotFound, configPath)
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: %w: %s: %v", ErrConfigParseError, configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from AYURCHEM_* variables and defaults only.
//
//	AYURCHEM_<SECTION>_<FIELD>   e.g. AYURCHEM_REDIS_ADDR, AYURCHEM_PUBCHEM_OFFLINE
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w: %v", ErrConfigParseError, err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w: %v", ErrConfigValidation, err)
	}
	return cfg, nil
}

// Watch monitors configPath and calls onChange with the re-parsed Config on
// every write.  A change that fails to parse or validate is reported to
// onError (when non-nil) and onChange is skipped.  Only the log level is
// safe to apply at runtime; callers decide what else to honour.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: %w: %s: %v", ErrConfigParseError, configPath, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// MustLoad panics when Load fails.  For main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
