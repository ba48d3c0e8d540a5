package domain

// CacheCategory is a namespace partition within the cache backend.
type CacheCategory string

// CategorySelectiveTests is the fixed category for the selective testing flow.
const CategorySelectiveTests CacheCategory = "selective-tests"

// CacheSource is the provenance of a cache classification.
type CacheSource string

const (
	// CacheSourceLocal marks an entry served from the local store.
	CacheSourceLocal CacheSource = "local"
	// CacheSourceRemote marks an entry served from the remote store.
	CacheSourceRemote CacheSource = "remote"
	// CacheSourceMiss marks a target that had to run. Backends never return
	// it; only the run itself assigns it after execution.
	CacheSourceMiss CacheSource = "miss"
)

// CacheKey addresses a cache entry by test name and content hash.
type CacheKey struct {
	Name string
	Hash string
}

// CacheItem is a classified cache entry: identity plus provenance.
type CacheItem struct {
	Name     string
	Hash     string
	Category CacheCategory
	Source   CacheSource
}

// Key returns the (name, hash) pair addressing this item.
func (i CacheItem) Key() CacheKey {
	return CacheKey{Name: i.Name, Hash: i.Hash}
}

// CacheStorableItem is a (name, hash) pair submitted for storage. For the
// selective-tests category the artifact payload stays empty: the cache
// records that a hash passed, not file contents.
type CacheStorableItem struct {
	Name  string
	Hash  string
	Paths []string
}
