package littlesearch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StorageFileImpl reads the corpus from plain text files. The manifest and
// the noise word list contain one entry per white-space separated word;
// document IDs are resolved relative to Dir.
type StorageFileImpl struct {
	Dir            string
	ManifestPath   string
	NoiseWordsPath string
}

func NewStorageFileImpl(dir, manifestPath, noiseWordsPath string) *StorageFileImpl {
	return &StorageFileImpl{
		Dir:            dir,
		ManifestPath:   manifestPath,
		NoiseWordsPath: noiseWordsPath,
	}
}

func (s *StorageFileImpl) GetManifest(ctx context.Context) ([]DocumentID, error) {
	words, err := readWords(s.resolve(s.ManifestPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, s.ManifestPath)
		}
		return nil, err
	}
	ids := make([]DocumentID, len(words))
	for i, w := range words {
		ids[i] = DocumentID(w)
	}
	return ids, nil
}

func (s *StorageFileImpl) GetNoiseWords(ctx context.Context) ([]string, error) {
	words, err := readWords(s.resolve(s.NoiseWordsPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoiseWordsNotFound, s.NoiseWordsPath)
		}
		return nil, err
	}
	return words, nil
}

func (s *StorageFileImpl) GetDocument(ctx context.Context, id DocumentID) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	body, err := os.ReadFile(s.resolve(string(id)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
		}
		return Document{}, err
	}
	return NewDocument(id, string(body)), nil
}

func (s *StorageFileImpl) resolve(path string) string {
	if s.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Dir, path)
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
