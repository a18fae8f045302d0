package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/k0kubun/pp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kotaroooo0/littlesearch"
	"github.com/kotaroooo0/littlesearch/config"
	"github.com/kotaroooo0/littlesearch/logger"
	"github.com/kotaroooo0/littlesearch/morphology"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	manifest := flag.String("manifest", "", "corpus manifest file (overrides config)")
	noise := flag.String("noise", "", "noise words file (overrides config)")
	dir := flag.String("dir", "", "directory the manifest entries are relative to (overrides config)")
	dump := flag.Bool("dump", false, "print the index after building it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *manifest != "" {
		cfg.Storage.Manifest = *manifest
	}
	if *noise != "" {
		cfg.Storage.NoiseWords = *noise
	}
	if *dir != "" {
		cfg.Storage.Dir = *dir
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *dump, flag.Args()); err != nil {
		slog.Error("littlesearch failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, dump bool, args []string) error {
	storage, closeStorage, err := newStorage(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStorage()

	newAnalyzer, err := analyzerFunc(cfg.Analyzer)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := littlesearch.NewMetrics(reg)
	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Addr, reg)
	}

	indexer := littlesearch.NewIndexer(storage, newAnalyzer)
	indexer.Workers = cfg.Indexer.Workers
	indexer.Metrics = metrics
	index, err := indexer.Build(ctx)
	if err != nil {
		return err
	}
	if dump {
		pp.Println(index)
	}

	searcher := littlesearch.NewSearcher(index,
		littlesearch.WithMaxResults(cfg.Search.MaxResults),
		littlesearch.WithSearchMetrics(metrics),
		littlesearch.WithQueryAnalyzer(newAnalyzer(nil)),
	)
	if len(args) > 0 {
		return search(os.Stdout, searcher, strings.Join(args, " "))
	}
	return repl(ctx, os.Stdin, os.Stdout, searcher)
}

func newStorage(cfg config.StorageConfig) (littlesearch.Storage, func(), error) {
	switch cfg.Driver {
	case littlesearch.DriverMySQL, littlesearch.DriverPostgres:
		db, err := littlesearch.NewDBClient(cfg.Driver, storageDSN(cfg))
		if err != nil {
			return nil, nil, err
		}
		return littlesearch.NewStorageRdbImpl(db), func() { db.Close() }, nil
	default:
		return littlesearch.NewStorageFileImpl(cfg.Dir, cfg.Manifest, cfg.NoiseWords), func() {}, nil
	}
}

// storage.dsn が無ければ接続情報の各フィールドから組み立てる
func storageDSN(cfg config.StorageConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return littlesearch.NewDBConfig(cfg.Driver, cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database).DSN()
}

func analyzerFunc(cfg config.AnalyzerConfig) (littlesearch.AnalyzerFunc, error) {
	var charFilters []littlesearch.CharFilter
	if len(cfg.CharMappings) > 0 {
		charFilters = append(charFilters, littlesearch.NewMappingCharFilter(cfg.CharMappings))
	}

	var tokenizer littlesearch.Tokenizer = littlesearch.NewWhitespaceTokenizer()
	if cfg.Tokenizer == "morphological" {
		kagome, err := morphology.NewKagome()
		if err != nil {
			return nil, fmt.Errorf("initializing kagome: %w", err)
		}
		tokenizer = littlesearch.NewMorphologicalTokenizer(kagome)
	}

	return func(noiseWords littlesearch.NoiseWords) littlesearch.Analyzer {
		var filters []littlesearch.TokenFilter
		if cfg.Romaji {
			filters = append(filters, littlesearch.NewRomajiReadingformFilter())
		}
		filters = append(filters, littlesearch.NewKeywordFilter(noiseWords))
		if cfg.Stem {
			filters = append(filters, littlesearch.NewStemmerFilter())
		}
		return littlesearch.NewAnalyzer(charFilters, tokenizer, filters)
	}, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	slog.Info("metrics server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server failed", "error", err)
	}
}

func search(w io.Writer, searcher *littlesearch.Searcher, line string) error {
	q, err := littlesearch.ParseQuery(line)
	if err != nil {
		return err
	}
	docs := searcher.Search(q)
	if len(docs) == 0 {
		fmt.Fprintf(w, "%s: no matches\n", q)
		return nil
	}
	for i, doc := range docs {
		fmt.Fprintf(w, "%d. %s\n", i+1, doc)
	}
	return nil
}

func repl(ctx context.Context, r io.Reader, w io.Writer, searcher *littlesearch.Searcher) error {
	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, "query> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			if err := search(w, searcher, line); err != nil {
				fmt.Fprintln(w, err)
			}
		}
		fmt.Fprint(w, "query> ")
	}
	return scanner.Err()
}
