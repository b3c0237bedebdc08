// README: Tariff store backed by Redis; values are opaque JSON blobs per scope.
package tariff

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	kindPricing  = "pricing"
	kindPackages = "packages"

	scopeKeyPrefix = "tariff:%s:%s:%s" // kind, owner, branch
)

// ErrNotFound is returned by Store.Get when no value is stored at the key.
// The resolver treats it the same as a malformed value: fall through the chain.
var ErrNotFound = errors.New("tariff config not found")

// Store is the narrow key-value contract the resolver depends on.
// Writes are last-write-wins; there is no versioning or locking.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

func storeKey(kind string, scope ScopeKey) string {
	return fmt.Sprintf(scopeKeyPrefix, kind, scope.OwnerID, scope.Branch)
}

// RedisStore persists tariff config in Redis without TTL: rate cards live
// until overwritten.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(redis *redis.Client) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.redis.Set(ctx, key, value, 0).Err()
}
