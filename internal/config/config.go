// Package config defines the configuration structures for AyurChem-Intelligence.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
}

// PubChemConfig holds the remote compound lookup parameters.
type PubChemConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds every single remote call.
	Timeout time.Duration `mapstructure:"timeout"`
	// MinInterval is the minimum spacing between two outbound calls.  It may
	// be raised above DefaultPubChemMinInterval but never lowered.
	MinInterval time.Duration `mapstructure:"min_interval"`
	// Offline disables the network entirely; curated fallbacks still apply.
	Offline   bool   `mapstructure:"offline"`
	UserAgent string `mapstructure:"user_agent"`
}

// Tag sources accepted by AnalysisConfig.TagSource.
const (
	TagSourceText   = "text"
	TagSourceRecord = "record"
)

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	// TagSource selects which property tags feed the correlation rules:
	// "text" (tags found anywhere in the text) or "record" (the herb's
	// static profile).
	TagSource string `mapstructure:"tag_source"`
	// Concurrency caps parallel compound resolution per request.
	Concurrency int `mapstructure:"concurrency"`
}

// RedisConfig holds the optional compound cache parameters.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	TTL          time.Duration `mapstructure:"ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// Neo4jConfig holds the optional herb graph store parameters.
type Neo4jConfig struct {
	Enabled               bool          `mapstructure:"enabled"`
	URI                   string        `mapstructure:"uri"`
	User                  string        `mapstructure:"user"`
	Password              string        `mapstructure:"password"`
	Database              string        `mapstructure:"database"`
	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout"`
}

// KafkaConfig holds the optional analysis event publisher parameters.
type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// CORSConfig holds cross-origin parameters for the browser UI.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	MaxAge         int      `mapstructure:"max_age"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig      `mapstructure:"server"`
	Log      logging.LogConfig `mapstructure:"log"`
	PubChem  PubChemConfig     `mapstructure:"pubchem"`
	Analysis AnalysisConfig    `mapstructure:"analysis"`
	Redis    RedisConfig       `mapstructure:"redis"`
	Neo4j    Neo4jConfig       `mapstructure:"neo4j"`
	Kafka    KafkaConfig       `mapstructure:"kafka"`
	Metrics  MetricsConfig     `mapstructure:"metrics"`
	CORS     CORSConfig        `mapstructure:"cors"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of a fully-defaulted Config and
// returns the first problem found.  Optional collaborators are validated only
// when enabled.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.MaxBodySize < 0 {
		return fmt.Errorf("server.max_body_size must be >= 0, got %d", c.Server.MaxBodySize)
	}

	switch c.Log.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if _, err := url.ParseRequestURI(c.PubChem.BaseURL); err != nil {
		return fmt.Errorf("pubchem.base_url %q is invalid: %v", c.PubChem.BaseURL, err)
	}
	if c.PubChem.Timeout <= 0 {
		return fmt.Errorf("pubchem.timeout must be positive")
	}
	if c.PubChem.MinInterval < DefaultPubChemMinInterval {
		return fmt.Errorf("pubchem.min_interval must be >= %s, got %s", DefaultPubChemMinInterval, c.PubChem.MinInterval)
	}

	switch c.Analysis.TagSource {
	case TagSourceText, TagSourceRecord:
	default:
		return fmt.Errorf("analysis.tag_source %q is invalid; expected text|record", c.Analysis.TagSource)
	}
	if c.Analysis.Concurrency < 1 {
		return fmt.Errorf("analysis.concurrency must be >= 1, got %d", c.Analysis.Concurrency)
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be >= 0, got %d", c.Redis.DB)
		}
	}

	if c.Neo4j.Enabled && c.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri is required when neo4j is enabled")
	}

	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must contain at least one broker when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	return nil
}

//Personal.AI order the ending
