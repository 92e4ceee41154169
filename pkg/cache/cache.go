// Package cache provides the byte cache shared by the suggestion service and
// the render pipeline.
//
// # Backends
//
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a Redis server, for long-running API servers
//   - [NullCache]: caching disabled
//
// # Keys
//
// Keys are built by a [Keyer] so that every caller hashes the same inputs the
// same way. [ScopedKeyer] adds a namespace prefix.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().ArtifactKey(configHash, cache.ArtifactKeyOpts{Format: "png", Pixels: 800})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"errors"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLSuggestion = 24 * time.Hour
	TTLArtifact   = 7 * 24 * time.Hour
)

// ErrUnavailable is returned when a cache backend cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// NullCache disables caching: every Get misses and every write is dropped.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache creates a null cache.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }

// Hash returns the hex SHA-256 of data. Config hashes, prompt hashes and
// file cache paths all use it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "prefix:<hash>" from the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
