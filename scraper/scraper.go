package scraper

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/qyinm/filmboard/types"
)

// FileSource implements types.CardSource over a saved board page, with an
// in-memory cache.
type FileSource struct {
	path  string
	cache *cachedResult
	mu    sync.Mutex
}

type cachedResult struct {
	cards     []types.Card
	timestamp time.Time
}

// Compile-time interface check
var _ types.CardSource = (*FileSource)(nil)

// NewFileSource creates a FileSource reading the board page at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the source reads from.
func (s *FileSource) Path() string { return s.path }

// GetCatalog reads and parses the board page, serving repeat calls from cache.
func (s *FileSource) GetCatalog() ([]types.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache.cards, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()

	cards, err := ParseBoard(f)
	if err != nil {
		return nil, fmt.Errorf("parse board %s: %w", s.path, err)
	}

	s.cache = &cachedResult{cards: cards, timestamp: time.Now()}
	return cards, nil
}

// LoadedAt reports when the cached catalog was read, or the zero time.
func (s *FileSource) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return time.Time{}
	}
	return s.cache.timestamp
}

// ClearCache drops the cached catalog so the next call rereads the file.
func (s *FileSource) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}
