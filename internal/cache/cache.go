package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is a flat directory of MP3 files keyed by a content hash.
// File existence is the index: there is no metadata and no expiry.
type Cache struct {
	dir string
}

// New creates the cache directory if needed and returns the cache.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache key for a synthesis request. Equal inputs always
// produce equal keys.
func Key(text, voice, engine string) string {
	sum := md5.Sum([]byte(text + "_" + voice + "_" + engine))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached audio for key, or ok=false on a miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put writes audio under key. Concurrent writers for the same key race
// harmlessly: identical inputs yield identical content.
func (c *Cache) Put(key string, audio []byte) error {
	if err := os.WriteFile(c.path(key), audio, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Clear removes every cached file and recreates the empty directory.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("remove cache dir: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("recreate cache dir: %w", err)
	}
	return nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".mp3")
}
