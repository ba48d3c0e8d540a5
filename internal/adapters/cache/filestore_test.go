package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/cache"
	"go.trai.ch/sift/internal/core/domain"
)

func TestFileStore_FetchAndStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store, err := cache.NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	keys := []domain.CacheKey{
		{Name: "UnitTests", Hash: "h1"},
		{Name: "UITests", Hash: "h2"},
	}

	found, err := store.Fetch(ctx, keys, domain.CategorySelectiveTests)
	require.NoError(t, err)
	assert.Empty(t, found)

	err = store.Store(ctx, []domain.CacheStorableItem{{Name: "UnitTests", Hash: "h1"}}, domain.CategorySelectiveTests)
	require.NoError(t, err)

	found, err = store.Fetch(ctx, keys, domain.CategorySelectiveTests)
	require.NoError(t, err)
	require.Len(t, found, 1)
	want := domain.CacheItem{
		Name:     "UnitTests",
		Hash:     "h1",
		Category: domain.CategorySelectiveTests,
		Source:   domain.CacheSourceLocal,
	}
	assert.Equal(t, path, found[want])
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	ctx := context.Background()

	store, err := cache.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Store(ctx, []domain.CacheStorableItem{{Name: "UnitTests", Hash: "h1"}}, domain.CategorySelectiveTests))

	reopened, err := cache.NewFileStore(path)
	require.NoError(t, err)
	found, err := reopened.Fetch(ctx, []domain.CacheKey{{Name: "UnitTests", Hash: "h1"}}, domain.CategorySelectiveTests)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestFileStore_KeysAreExact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	store, err := cache.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Store(ctx, []domain.CacheStorableItem{{Name: "UnitTests", Hash: "h1"}}, domain.CategorySelectiveTests))

	// A different hash for the same name is a distinct entry.
	found, err := store.Fetch(ctx, []domain.CacheKey{{Name: "UnitTests", Hash: "h2"}}, domain.CategorySelectiveTests)
	require.NoError(t, err)
	assert.Empty(t, found)

	// Same key in a different category is a distinct entry.
	found, err = store.Fetch(ctx, []domain.CacheKey{{Name: "UnitTests", Hash: "h1"}}, domain.CacheCategory("builds"))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cache.NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal cache store")
}
