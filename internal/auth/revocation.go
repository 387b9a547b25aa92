package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"htmxtodo/internal/cache"
)

const revokedTokenKeyPrefix = "revoked_token:"

// RevocationStore records tokens that must no longer be accepted.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisRevocationStore keeps revoked token digests in Redis.
type RedisRevocationStore struct {
	cache *cache.Client
}

// Ensure RedisRevocationStore implements RevocationStore
var _ RevocationStore = (*RedisRevocationStore)(nil)

// NewRedisRevocationStore creates a revocation store backed by c.
func NewRedisRevocationStore(c *cache.Client) *RedisRevocationStore {
	return &RedisRevocationStore{cache: c}
}

// Revoke marks token as revoked. A zero ttl keeps the mark forever, which is
// what tokens without an expiry need.
func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.cache.Set(ctx, revocationKey(token), []byte("1"), ttl)
}

// IsRevoked checks whether token has been revoked.
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.cache.Exists(ctx, revocationKey(token))
}

// Tokens are stored as digests so Redis never holds usable credentials.
func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedTokenKeyPrefix + hex.EncodeToString(sum[:])
}
