package data

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"
)

// TableSource loads a table for a resolved path.
type TableSource interface {
	Load(path string) (*Table, error)
}

// FileSource reads straight from disk on every call.
type FileSource struct{}

func (FileSource) Load(path string) (*Table, error) { return LoadTable(path) }

type cacheEntry struct {
	table     *Table
	expiresAt time.Time
}

// TableCache memoizes loaded tables. The key covers path, size and
// modification time, so a rewritten file is always reloaded. Tables are
// read-only, so a cached value can be shared between requests.
type TableCache struct {
	mu    sync.RWMutex
	store map[uint64]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
	load  func(string) (*Table, error)
}

// NewTableSource returns a cache when ttl > 0, otherwise a FileSource.
func NewTableSource(ttl time.Duration) TableSource {
	if ttl <= 0 {
		return FileSource{}
	}
	return NewTableCache(ttl)
}

func NewTableCache(ttl time.Duration) *TableCache {
	return &TableCache{
		store: make(map[uint64]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		load:  LoadTable,
	}
}

// Load returns the cached table for path if still valid, loading it otherwise.
func (c *TableCache) Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey(path, info.Size(), info.ModTime())

	if t, ok := c.get(key); ok {
		log.Debug().Str("component", "cache").Str("path", path).Msg("Cache hit")
		return t, nil
	}

	t, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.set(key, t)
	return t, nil
}

func (c *TableCache) get(key uint64) (*Table, bool) {
	c.mu.RLock()
	entry, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A set may have refreshed the entry since the read lock was released.
		if cur, ok := c.store[key]; ok && !c.now().After(cur.expiresAt) {
			return cur.table, true
		}
		delete(c.store, key)
		return nil, false
	}
	return entry.table, true
}

func (c *TableCache) set(key uint64, t *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictExpired()
	c.store[key] = &cacheEntry{table: t, expiresAt: c.now().Add(c.ttl)}
}

// evictExpired runs under the write lock.
func (c *TableCache) evictExpired() {
	now := c.now()
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
		}
	}
}

// Len is the number of entries currently held.
func (c *TableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *TableCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[uint64]*cacheEntry)
}

func cacheKey(path string, size int64, mod time.Time) uint64 {
	return xxh3.HashString(path + "|" + strconv.FormatInt(size, 10) + "|" + strconv.FormatInt(mod.UnixNano(), 10))
}
