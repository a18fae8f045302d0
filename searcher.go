package littlesearch

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kotaroooo0/littlesearch/logger"
)

// MaxResults is the number of documents returned by Top5.
const MaxResults = 5

// Top5 returns up to five documents containing kw1 or kw2, in descending
// order of frequency.
func (idx Index) Top5(kw1, kw2 string) []DocumentID {
	return idx.TopK(kw1, kw2, MaxResults)
}

// TopK returns up to k documents containing kw1 or kw2. Documents are ordered
// by the frequency of the matching keyword; on equal frequencies kw1 wins.
// A document matching both keywords is listed once, at its best position.
func (idx Index) TopK(kw1, kw2 string, k int) []DocumentID {
	if k <= 0 {
		return []DocumentID{}
	}
	pl1, ok1 := idx[strings.ToLower(kw1)]
	pl2, ok2 := idx[strings.ToLower(kw2)]
	result := make([]DocumentID, 0, min(k, len(pl1)+len(pl2)))

	switch {
	case !ok1 && !ok2:
		return result
	case ok1 && !ok2:
		return appendDocuments(result, pl1, k)
	case !ok1 && ok2:
		return appendDocuments(result, pl2, k)
	}

	// 両方のポスティングリストは頻度の降順なので、先頭同士を比較して大きい方を取り出す
	seen := make(map[DocumentID]struct{}, k)
	i, j := 0, 0
	for len(result) < k {
		for i < len(pl1) && contains(seen, pl1[i].Document) {
			i++
		}
		for j < len(pl2) && contains(seen, pl2[j].Document) {
			j++
		}
		var next Occurrence
		switch {
		case i < len(pl1) && j < len(pl2):
			if pl1[i].Frequency >= pl2[j].Frequency {
				next = pl1[i]
				i++
			} else {
				next = pl2[j]
				j++
			}
		case i < len(pl1):
			next = pl1[i]
			i++
		case j < len(pl2):
			next = pl2[j]
			j++
		default:
			return result
		}
		seen[next.Document] = struct{}{}
		result = append(result, next.Document)
	}
	return result
}

func appendDocuments(dst []DocumentID, pl PostingList, k int) []DocumentID {
	for _, o := range pl {
		if len(dst) >= k {
			break
		}
		dst = append(dst, o.Document)
	}
	return dst
}

func contains(set map[DocumentID]struct{}, doc DocumentID) bool {
	_, ok := set[doc]
	return ok
}

// Searcher answers queries against a built index.
type Searcher struct {
	index      Index
	maxResults int
	analyzer   *Analyzer
	metrics    *Metrics
	logger     *slog.Logger
}

type SearcherOption func(*Searcher)

func WithMaxResults(n int) SearcherOption {
	return func(s *Searcher) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithQueryAnalyzer maps query keywords through the analyzer the index was
// built with, so that stemmed or romanized entries can be found.
func WithQueryAnalyzer(analyzer Analyzer) SearcherOption {
	return func(s *Searcher) {
		s.analyzer = &analyzer
	}
}

func WithSearchMetrics(m *Metrics) SearcherOption {
	return func(s *Searcher) {
		s.metrics = m
	}
}

func NewSearcher(index Index, options ...SearcherOption) *Searcher {
	s := &Searcher{
		index:      index,
		maxResults: MaxResults,
		logger:     logger.WithComponent("searcher"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Search(q Query) []DocumentID {
	start := time.Now()
	kw1, kw2 := s.keyword(q.Keyword1), s.keyword(q.Keyword2)
	docs := s.index.TopK(kw1, kw2, s.maxResults)
	if s.metrics != nil {
		s.metrics.observeSearch(len(docs), time.Since(start))
	}
	s.logger.Debug("search", "kw1", kw1, "kw2", kw2, "results", len(docs))
	return docs
}

// アナライザがキーワードを落とした場合は小文字にしただけの語で引く
func (s *Searcher) keyword(kw string) string {
	if s.analyzer == nil || kw == "" {
		return kw
	}
	tokenStream := s.analyzer.Analyze(kw)
	if tokenStream.Size() == 0 {
		return strings.ToLower(kw)
	}
	return tokenStream.Tokens[0].Term
}
