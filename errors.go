package littlesearch

import "errors"

var (
	ErrManifestNotFound   = errors.New("corpus manifest not found")
	ErrNoiseWordsNotFound = errors.New("noise words not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidQuery       = errors.New("invalid query")
)
