// Package cache implements the cache backend behind the fetch/store
// contract: a local JSON-file store, an S3-compatible remote store, and a
// tiered composite that consults both.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*FileStore)(nil)

// FileStore implements ports.CacheStore using a flat JSON file.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]fileEntry
}

type fileEntry struct {
	Name     string    `json:"name"`
	Hash     string    `json:"hash"`
	Category string    `json:"category"`
	StoredAt time.Time `json:"stored_at"`
}

// NewFileStore creates a local cache store backed by the file at the given path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    filepath.Clean(path),
		entries: make(map[string]fileEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cache store")
	}

	return nil
}

func (s *FileStore) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for cache store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache store")
	}

	return nil
}

// Fetch returns the locally stored entries among the given keys, each with
// local provenance and the store file as its location.
func (s *FileStore) Fetch(_ context.Context, keys []domain.CacheKey, category domain.CacheCategory) (map[domain.CacheItem]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.CacheItem]string)
	for _, key := range keys {
		if _, ok := s.entries[entryKey(category, key)]; !ok {
			continue
		}
		item := domain.CacheItem{
			Name:     key.Name,
			Hash:     key.Hash,
			Category: category,
			Source:   domain.CacheSourceLocal,
		}
		out[item] = s.path
	}
	return out, nil
}

// Store persists the given items.
func (s *FileStore) Store(_ context.Context, items []domain.CacheStorableItem, category domain.CacheCategory) error {
	s.mu.Lock()
	now := time.Now()
	for _, item := range items {
		key := entryKey(category, domain.CacheKey{Name: item.Name, Hash: item.Hash})
		s.entries[key] = fileEntry{
			Name:     item.Name,
			Hash:     item.Hash,
			Category: string(category),
			StoredAt: now,
		}
	}
	s.mu.Unlock()

	return s.save()
}

func entryKey(category domain.CacheCategory, key domain.CacheKey) string {
	return string(category) + "/" + key.Name + "/" + key.Hash
}
