// Package config loads fragsearch.Index configuration from YAML files with
// environment-variable overrides, and translates it into fragsearch.Option
// values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	fragsearch "github.com/rawwwulea/QuickSearch"
)

// Config is the top-level configuration for an Index.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexConfig controls Index-level knobs.
type IndexConfig struct {
	MinKeywordLength int    `yaml:"minKeywordLength"`
	InternShards     int    `yaml:"internShards"`
	Scorer           string `yaml:"scorer"`
}

// LoggingConfig controls structured logging level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds the metrics section of the config file. Enabled is
// read from YAML and FRAGSEARCH_METRICS_ENABLED, but Options does not turn
// it into any Option: no metrics collector is configured from it.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads the YAML config file at path, applies FRAGSEARCH_* environment
// overrides, and returns the result. An empty path returns defaultConfig
// with only environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Index.MinKeywordLength < 1 {
		return nil, fmt.Errorf("index.minKeywordLength=%d: %w", cfg.Index.MinKeywordLength, fragsearch.ErrInvalidMinKeywordLength)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			MinKeywordLength: 2,
			InternShards:     64,
			Scorer:           "ratio",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FRAGSEARCH_MIN_KEYWORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Index.MinKeywordLength = n
		}
	}
	if v := os.Getenv("FRAGSEARCH_INTERN_SHARDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Index.InternShards = n
		}
	}
	if v := os.Getenv("FRAGSEARCH_SCORER"); v != "" {
		cfg.Index.Scorer = v
	}
	if v := os.Getenv("FRAGSEARCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FRAGSEARCH_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("FRAGSEARCH_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
}

// Options translates cfg into fragsearch.Option values ready to pass to
// fragsearch.New.
func (cfg *Config) Options() []fragsearch.Option {
	opts := []fragsearch.Option{
		fragsearch.WithMinKeywordLength(cfg.Index.MinKeywordLength),
		fragsearch.WithInternShards(cfg.Index.InternShards),
		fragsearch.WithScorer(cfg.scorer()),
		fragsearch.WithLogger(cfg.logger()),
	}
	return opts
}

func (cfg *Config) scorer() fragsearch.Scorer {
	switch strings.ToLower(cfg.Index.Scorer) {
	case "length":
		return fragsearch.LengthScorer
	default:
		return fragsearch.RatioScorer
	}
}

func (cfg *Config) logger() *fragsearch.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		level = slog.LevelInfo
	}

	if strings.EqualFold(cfg.Logging.Format, "json") {
		return fragsearch.NewJSONLogger(level)
	}
	return fragsearch.NewTextLogger(level)
}
