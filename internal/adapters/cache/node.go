package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the cache store adapter Graft node.
const NodeID graft.ID = "adapter.cache_store"

const defaultStoreFile = ".sift/cache.json"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheStore, error) {
			local, err := NewFileStore(localStorePath())
			if err != nil {
				return nil, err
			}

			var remote ports.CacheStore
			if cfg, ok := remoteConfigFromEnv(); ok {
				r, err := NewRemoteStore(cfg)
				if err != nil {
					return nil, err
				}
				remote = r
			}

			return NewTieredStore(local, remote)
		},
	})
}

func localStorePath() string {
	if path := os.Getenv("SIFT_CACHE_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultStoreFile
	}
	return filepath.Join(home, defaultStoreFile)
}

// remoteConfigFromEnv reads the remote tier settings. The remote tier is
// enabled only when an endpoint is configured.
func remoteConfigFromEnv() (RemoteConfig, bool) {
	endpoint := os.Getenv("SIFT_CACHE_ENDPOINT")
	if endpoint == "" {
		return RemoteConfig{}, false
	}
	bucket := os.Getenv("SIFT_CACHE_BUCKET")
	if bucket == "" {
		bucket = "sift-cache"
	}
	return RemoteConfig{
		Endpoint:  endpoint,
		Bucket:    bucket,
		AccessKey: os.Getenv("SIFT_CACHE_ACCESS_KEY"),
		SecretKey: os.Getenv("SIFT_CACHE_SECRET_KEY"),
		UseSSL:    os.Getenv("SIFT_CACHE_INSECURE") == "",
	}, true
}
