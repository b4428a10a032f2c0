// Package config handles loading and validating the configurator server
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
)

// Catalog source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceHTTP     = "http"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Cache    CacheConfig    `yaml:"cache"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Configured reports whether enough connection details are present to
// attempt a connection.
func (d *DatabaseConfig) Configured() bool {
	return d.Host != "" && d.Name != "" && d.User != ""
}

// CatalogConfig selects where the product catalog comes from and how often
// it is reloaded.
type CatalogConfig struct {
	Source          string            `yaml:"source"` // embedded, file, postgres, http
	Path            string            `yaml:"path"`
	URL             string            `yaml:"url"`
	Headers         map[string]string `yaml:"headers"`
	Timeout         time.Duration     `yaml:"timeout"`
	RefreshInterval time.Duration     `yaml:"refresh_interval"`
	RateLimit       RateLimitConfig   `yaml:"rate_limit"`
}

// RateLimitConfig bounds calls made to a remote catalog.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// CacheConfig defines the optional Redis snapshot cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	TTL       time.Duration `yaml:"ttl"`
	KeyPrefix string        `yaml:"key_prefix"`
}

// ScoringConfig defines result limits and factor weights.
type ScoringConfig struct {
	DefaultLimit int                `yaml:"default_limit"`
	MaxLimit     int                `yaml:"max_limit"`
	Weights      *recommend.Weights `yaml:"weights"` // nil means recommend.DefaultWeights
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration that serves the embedded demo catalog.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCatalogDefaults(&cfg.Catalog)
	applyCacheDefaults(&cfg.Cache)
	applyScoringDefaults(&cfg.Scoring)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Source == "" {
		c.Source = SourceEmbedded
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 15 * time.Minute
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 2.0
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 4
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.TTL == 0 {
		c.TTL = 10 * time.Minute
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = "configurator"
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.DefaultLimit == 0 {
		s.DefaultLimit = recommend.DefaultLimit
	}
	if s.MaxLimit == 0 {
		s.MaxLimit = 50
	}
	if s.Weights == nil {
		w := recommend.DefaultWeights()
		s.Weights = &w
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = logger.FormatText
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Catalog.Source {
	case SourceEmbedded:
	case SourceFile:
		if cfg.Catalog.Path == "" {
			errs = append(errs, errors.New("catalog.path is required when source is file"))
		}
	case SourceHTTP:
		if cfg.Catalog.URL == "" {
			errs = append(errs, errors.New("catalog.url is required when source is http"))
		}
		if cfg.Catalog.RateLimit.PerSecond < 0 || cfg.Catalog.RateLimit.Burst < 0 {
			errs = append(errs, errors.New("catalog.rate_limit values must be non-negative"))
		}
	case SourcePostgres:
		errs = append(errs, validateDatabase(&cfg.Database)...)
	default:
		errs = append(errs, fmt.Errorf(
			"catalog.source must be one of: embedded, file, postgres, http (got %q)",
			cfg.Catalog.Source,
		))
	}

	if cfg.Catalog.RefreshInterval < 0 {
		errs = append(errs, errors.New("catalog.refresh_interval must be non-negative"))
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must be non-negative"))
	}

	if cfg.Scoring.DefaultLimit < 1 {
		errs = append(errs, fmt.Errorf("scoring.default_limit must be positive (got %d)", cfg.Scoring.DefaultLimit))
	}
	if cfg.Scoring.MaxLimit < cfg.Scoring.DefaultLimit {
		errs = append(errs, fmt.Errorf(
			"scoring.max_limit (%d) must be at least scoring.default_limit (%d)",
			cfg.Scoring.MaxLimit, cfg.Scoring.DefaultLimit,
		))
	}
	if err := cfg.Scoring.Weights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring.weights: %w", err))
	}

	if !logger.ValidLevel(cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format %q is not one of text, json", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

// ValidateDatabase checks the connection settings needed by commands that
// always talk to Postgres, such as migrate and seed.
func (c *Config) ValidateDatabase() error {
	return errors.Join(validateDatabase(&c.Database)...)
}

func validateDatabase(d *DatabaseConfig) []error {
	var errs []error
	if d.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if d.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}
	return errs
}
