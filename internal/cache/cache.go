// Package cache stores generated reports so a repeat submission of the
// identical lead within the TTL reuses the report without a network
// call.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value store with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a lead identity (email|website).
func Key(identity string) string {
	hash := sha256.Sum256([]byte(identity))
	return "leadflow:v1:" + hex.EncodeToString(hash[:])
}
