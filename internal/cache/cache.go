package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey generates a cache key for a fetched page
func PageKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "duilens:v1:page:" + hex.EncodeToString(hash[:])
}

// ResultKey generates a cache key for an analysis result.
// The segmenter strategy is part of the key because token boundaries
// change which parts get extracted.
func ResultKey(strategy, sentence string) string {
	hash := sha256.Sum256([]byte(strategy + "\x00" + sentence))
	return "duilens:v1:result:" + hex.EncodeToString(hash[:])
}
