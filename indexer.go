package littlesearch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kotaroooo0/littlesearch/logger"
)

// AnalyzerFunc builds the document analyzer once the noise words are known.
type AnalyzerFunc func(NoiseWords) Analyzer

type Indexer struct {
	Storage     Storage      // コーパスの読み出し元
	NewAnalyzer AnalyzerFunc // 文章をキーワードに分割するアナライザ
	Workers     int          // ドキュメントを並行に読み込む数
	Metrics     *Metrics

	logger *slog.Logger
}

func NewIndexer(storage Storage, newAnalyzer AnalyzerFunc) *Indexer {
	if newAnalyzer == nil {
		newAnalyzer = NewKeywordAnalyzer
	}
	return &Indexer{
		Storage:     storage,
		NewAnalyzer: newAnalyzer,
		Workers:     1,
		logger:      logger.WithComponent("indexer"),
	}
}

// LoadKeywords counts the keywords of a single document.
func LoadKeywords(doc Document, analyzer Analyzer) map[string]int {
	return analyzer.Analyze(doc.Body).Frequencies()
}

// 1.ノイズワードを読み込む
// 2.マニフェストの順にドキュメントを読み込み、キーワードの出現回数を数える
// 3.マニフェストの順に転置インデックスへマージする
func (i *Indexer) Build(ctx context.Context) (Index, error) {
	start := time.Now()
	words, err := i.Storage.GetNoiseWords(ctx)
	if err != nil {
		return nil, err
	}
	analyzer := i.NewAnalyzer(NewNoiseWords(words))

	manifest, err := i.Storage.GetManifest(ctx)
	if err != nil {
		return nil, err
	}
	docIDs := i.dedup(manifest)
	i.logger.Info("building index", "documents", len(docIDs), "noise_words", len(words), "workers", i.workers())

	keywords := make([]map[string]int, len(docIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers())
	for n, id := range docIDs {
		g.Go(func() error {
			doc, err := i.Storage.GetDocument(gctx, id)
			if err != nil {
				return err
			}
			keywords[n] = LoadKeywords(doc, analyzer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := make(Index)
	for n, id := range docIDs {
		index.Merge(id, keywords[n])
		i.logger.Debug("merged document", "document", id, "keywords", len(keywords[n]))
	}

	elapsed := time.Since(start)
	if i.Metrics != nil {
		i.Metrics.observeBuild(len(docIDs), len(index), elapsed)
	}
	i.logger.Info("index built", "documents", len(docIDs), "keywords", len(index), "elapsed", elapsed)
	return index, nil
}

// 同じドキュメントを二度マージするとポスティングリストに重複が生じるので除く
func (i *Indexer) dedup(manifest []DocumentID) []DocumentID {
	seen := make(map[DocumentID]struct{}, len(manifest))
	ids := make([]DocumentID, 0, len(manifest))
	for _, id := range manifest {
		if _, ok := seen[id]; ok {
			i.logger.Warn("duplicate manifest entry skipped", "document", id)
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (i *Indexer) workers() int {
	if i.Workers < 1 {
		return 1
	}
	return i.Workers
}
