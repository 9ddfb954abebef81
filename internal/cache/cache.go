package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for provider-response caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for a provider query
func Key(provider, query string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + query))
	return "veracity:v1:" + hex.EncodeToString(hash[:])
}
