package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/notmytype/internal/model"
)

// Cache stores opaque byte payloads with per-entry TTLs
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key. Parts are hashed so secrets in
// request URLs never reach disk file names.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "notmytype:v1:" + hex.EncodeToString(hash[:])
}

// New builds the cache described by cfg: layered memory+disk, memory only when
// no dir is set, or a no-op cache when disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return Noop{}
	}
	if cfg.Dir == "" {
		return NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
	}
	return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

// GetJSON decodes a cached JSON value into v. A decode failure counts as a miss.
func GetJSON(c Cache, key string, v interface{}) bool {
	data, found := c.Get(key)
	if !found {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// SetJSON encodes v as JSON and stores it
func SetJSON(c Cache, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return c.Set(key, data, ttl)
}

// Noop is a cache that never stores anything
type Noop struct{}

func (Noop) Get(string) ([]byte, bool) {
	return nil, false
}

func (Noop) Set(string, []byte, time.Duration) error {
	return nil
}

func (Noop) Delete(string) error {
	return nil
}

func (Noop) Clear() error {
	return nil
}
