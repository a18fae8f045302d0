// Package config loads the littlesearch configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Indexer  IndexerConfig  `yaml:"indexer"`
	Search   SearchConfig   `yaml:"search"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// StorageConfig selects where the corpus is read from. Driver is one of
// "file", "mysql" or "postgres". Database drivers take either DSN or the
// Host/Port/User/Password/Database fields.
type StorageConfig struct {
	Driver     string `yaml:"driver"`
	Dir        string `yaml:"dir"`
	Manifest   string `yaml:"manifest"`
	NoiseWords string `yaml:"noiseWords"`
	DSN        string `yaml:"dsn"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Database   string `yaml:"database"`
}

// AnalyzerConfig controls how document text is turned into keywords.
type AnalyzerConfig struct {
	Tokenizer    string            `yaml:"tokenizer"`
	Romaji       bool              `yaml:"romaji"`
	Stem         bool              `yaml:"stem"`
	CharMappings map[string]string `yaml:"charMappings"`
}

type IndexerConfig struct {
	Workers int `yaml:"workers"`
}

type SearchConfig struct {
	MaxResults int `yaml:"maxResults"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads a YAML config file (if path is not empty) over the defaults and
// applies LSE_* environment overrides.
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:     "file",
			Manifest:   "docs.txt",
			NoiseWords: "noisewords.txt",
		},
		Analyzer: AnalyzerConfig{
			Tokenizer: "whitespace",
		},
		Indexer: IndexerConfig{
			Workers: 1,
		},
		Search: SearchConfig{
			MaxResults: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

var defaultPorts = map[string]string{
	"mysql":    "3306",
	"postgres": "5432",
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "file":
	case "mysql", "postgres":
		if c.Storage.DSN == "" && (c.Storage.Host == "" || c.Storage.Database == "") {
			return fmt.Errorf("storage.dsn or storage.host and storage.database are required for driver %s", c.Storage.Driver)
		}
		if c.Storage.DSN == "" && c.Storage.Port == "" {
			c.Storage.Port = defaultPorts[c.Storage.Driver]
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Analyzer.Tokenizer {
	case "whitespace", "morphological":
	default:
		return fmt.Errorf("unknown tokenizer %q", c.Analyzer.Tokenizer)
	}
	if c.Analyzer.Romaji && c.Analyzer.Tokenizer != "morphological" {
		return fmt.Errorf("analyzer.romaji requires the morphological tokenizer")
	}
	if c.Indexer.Workers < 1 {
		return fmt.Errorf("indexer.workers must be positive, got %d", c.Indexer.Workers)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.maxResults must be positive, got %d", c.Search.MaxResults)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LSE_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("LSE_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("LSE_STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("LSE_STORAGE_HOST"); v != "" {
		cfg.Storage.Host = v
	}
	if v := os.Getenv("LSE_STORAGE_PASSWORD"); v != "" {
		cfg.Storage.Password = v
	}
	if v := os.Getenv("LSE_INDEXER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indexer.Workers = n
		}
	}
	if v := os.Getenv("LSE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LSE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LSE_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
}
