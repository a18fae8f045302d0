package littlesearch

import "context"

//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=littlesearch

type Storage interface {
	GetManifest(ctx context.Context) ([]DocumentID, error)            // 索引対象のドキュメントIDを順に返す
	GetNoiseWords(ctx context.Context) ([]string, error)              // ノイズワードを返す
	GetDocument(ctx context.Context, id DocumentID) (Document, error) // IDからドキュメントを返す
}
