package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "littlesearch.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, defaultConfig()); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: file
  dir: /srv/corpus
  manifest: manifest.txt
analyzer:
  tokenizer: morphological
  romaji: true
  charMappings:
    "！": "!"
indexer:
  workers: 4
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Storage.Dir = "/srv/corpus"
	want.Storage.Manifest = "manifest.txt"
	want.Analyzer = AnalyzerConfig{
		Tokenizer:    "morphological",
		Romaji:       true,
		CharMappings: map[string]string{"！": "!"},
	}
	want.Indexer.Workers = 4
	want.Logging = LoggingConfig{Level: "debug", Format: "json"}
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LSE_STORAGE_DRIVER", "mysql")
	t.Setenv("LSE_STORAGE_DSN", "root:password@tcp(127.0.0.1:3306)/littlesearch")
	t.Setenv("LSE_INDEXER_WORKERS", "8")
	t.Setenv("LSE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Driver != "mysql" || cfg.Storage.DSN == "" {
		t.Errorf("storage overrides not applied: %+v", cfg.Storage)
	}
	if cfg.Indexer.Workers != 8 {
		t.Errorf("Indexer.Workers = %d, want 8", cfg.Indexer.Workers)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown driver", body: "storage:\n  driver: redis\n", want: "unknown storage driver"},
		{name: "missing dsn", body: "storage:\n  driver: postgres\n", want: "storage.dsn or storage.host"},
		{name: "host without database", body: "storage:\n  driver: mysql\n  host: db\n", want: "storage.dsn or storage.host"},
		{name: "unknown tokenizer", body: "analyzer:\n  tokenizer: ngram\n", want: "unknown tokenizer"},
		{name: "romaji without morphology", body: "analyzer:\n  romaji: true\n", want: "requires the morphological tokenizer"},
		{name: "zero workers", body: "indexer:\n  workers: 0\n", want: "indexer.workers must be positive"},
		{name: "zero results", body: "search:\n  maxResults: 0\n", want: "search.maxResults must be positive"},
		{name: "broken yaml", body: "storage: [\n", want: "parsing config file"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadDatabaseFields(t *testing.T) {
	t.Setenv("LSE_STORAGE_PASSWORD", "secret")
	path := writeConfig(t, `
storage:
  driver: postgres
  host: db.internal
  user: search
  database: corpus
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig().Storage
	want.Driver = "postgres"
	want.Host = "db.internal"
	want.Port = "5432"
	want.User = "search"
	want.Password = "secret"
	want.Database = "corpus"
	if diff := cmp.Diff(cfg.Storage, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
