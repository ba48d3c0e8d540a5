package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*RemoteStore)(nil)

// RemoteConfig holds the connection settings for the remote cache.
type RemoteConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// RemoteStore implements ports.CacheStore against an S3-compatible object
// store. Entries live at <category>/<name>/<hash>; the object body carries
// the stored item, which for selective tests has an empty payload list.
type RemoteStore struct {
	client *minio.Client
	bucket string
}

// NewRemoteStore creates a remote cache store from the given config.
func NewRemoteStore(cfg RemoteConfig) (*RemoteStore, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, zerr.New("remote cache endpoint is required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, zerr.New("remote cache bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create remote cache client")
	}

	return &RemoteStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Fetch returns the remotely stored entries among the given keys, each with
// remote provenance and its object URL as the location.
func (s *RemoteStore) Fetch(ctx context.Context, keys []domain.CacheKey, category domain.CacheCategory) (map[domain.CacheItem]string, error) {
	out := make(map[domain.CacheItem]string)
	for _, key := range keys {
		objectKey := objectKey(category, key)
		_, err := s.client.StatObject(ctx, s.bucket, objectKey, minio.StatObjectOptions{})
		if err != nil {
			resp := minio.ToErrorResponse(err)
			if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat remote cache entry"), "key", objectKey)
		}
		item := domain.CacheItem{
			Name:     key.Name,
			Hash:     key.Hash,
			Category: category,
			Source:   domain.CacheSourceRemote,
		}
		out[item] = "s3://" + s.bucket + "/" + objectKey
	}
	return out, nil
}

// Store persists the given items.
func (s *RemoteStore) Store(ctx context.Context, items []domain.CacheStorableItem, category domain.CacheCategory) error {
	for _, item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return zerr.Wrap(err, "failed to marshal cache entry")
		}
		key := objectKey(category, domain.CacheKey{Name: item.Name, Hash: item.Hash})
		_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to store remote cache entry"), "key", key)
		}
	}
	return nil
}

func objectKey(category domain.CacheCategory, key domain.CacheKey) string {
	return string(category) + "/" + key.Name + "/" + key.Hash
}
