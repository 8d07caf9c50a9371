package agedcache

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Cache is a generic in-memory cache whose entries expire after a per-entry
// retention.
//
// A map indexes entries by key and a sentinel-bounded list keeps the same
// entries ordered by expiration, so every purge only touches the front of the
// list.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	index map[K]*entry[K, V]
	order *expiryList[K, V]
	cfg   config[K, V]
	stats stats
}

// New creates a new Cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		index: make(map[K]*entry[K, V]),
		order: newExpiryList[K, V](),
		cfg:   cfg,
	}
}

// Put stores value under key until retention has elapsed.
// A Put for a key that is already present replaces the previous entry and its
// expiration. A zero retention stores an entry that is already expired.
func (c *Cache[K, V]) Put(key K, value V, retention time.Duration) error {
	if retention < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeRetention, retention)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.cfg.clock.Now()
	c.purge(now)

	if old, ok := c.index[key]; ok {
		c.order.unlink(old)
		c.stats.replace()
		if c.cfg.logger != nil {
			c.cfg.logger.WithFields(logrus.Fields{
				"key":            key,
				"old_expires_at": old.expiresAt,
			}).Debug("agedcache: replacing entry")
		}
	}

	ent := &entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: now.Add(retention),
	}
	c.order.insertSorted(ent)
	c.index[key] = ent
	return nil
}

// Get returns the value stored under key and true, or the zero value and
// false if the key is absent or its entry has expired. Get never removes
// entries; expired ones are dropped by the next purge.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.index[key]
	if !ok || ent.isExpired(c.cfg.clock.Now()) {
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		var zero V
		return zero, false
	}

	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, ent.value)
	}
	return ent.value, true
}

// Size purges expired entries and returns the number that remain.
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purge(c.cfg.clock.Now())
	return len(c.index)
}

// IsEmpty reports whether Size is zero. It purges like Size does.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Size() == 0
}

// Purge removes every expired entry and returns how many were removed.
func (c *Cache[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.purge(c.cfg.clock.Now())
}

// Delete removes key from the cache.
// Returns true if an unexpired entry was removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purge(c.cfg.clock.Now())

	ent, ok := c.index[key]
	if !ok {
		return false
	}
	c.order.unlink(ent)
	delete(c.index, key)
	return true
}

// Clear removes all entries without firing expiration callbacks.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.index)
	c.index = make(map[K]*entry[K, V])
	c.order.reset()

	if c.cfg.logger != nil {
		c.cfg.logger.WithField("dropped", n).Debug("agedcache: cleared")
	}
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.snapshot()
}

// purge unlinks expired entries from the front of the list until it reaches
// one that is still live. Callers must hold the write lock.
func (c *Cache[K, V]) purge(now time.Time) int {
	n := 0
	for ent := c.order.front(); ent != nil && ent.isExpired(now); ent = c.order.front() {
		c.order.unlink(ent)
		delete(c.index, ent.key)
		n++
		if c.cfg.onExpire != nil {
			c.cfg.onExpire(ent.key, ent.value)
		}
	}
	if n == 0 {
		return 0
	}

	c.stats.expire(n)
	if c.cfg.logger != nil {
		c.cfg.logger.WithFields(logrus.Fields{
			"purged":    n,
			"remaining": len(c.index),
		}).Debug("agedcache: purged expired entries")
	}
	return n
}
