package agedcache

import "github.com/sirupsen/logrus"

type config[K comparable, V any] struct {
	clock    Clock
	logger   logrus.FieldLogger
	onExpire func(K, V)
	onHit    func(K, V)
	onMiss   func(K)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		clock: realClock{},
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithClock sets a custom clock for time operations.
// Useful for testing expiration deterministically. A nil clock is ignored.
func WithClock[K comparable, V any](clk Clock) Option[K, V] {
	return func(c *config[K, V]) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets a logger for debug output about purges, replacements and
// clears. The cache logs nothing by default.
func WithLogger[K comparable, V any](l logrus.FieldLogger) Option[K, V] {
	return func(c *config[K, V]) {
		c.logger = l
	}
}

// OnExpire sets a callback invoked for each entry removed by a purge.
func OnExpire[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onExpire = fn
	}
}

// OnHit sets a callback invoked on cache hits.
// Get holds only the read lock, so fn may run concurrently with itself.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses, including reads of expired
// entries. Like OnHit, fn may run concurrently with itself.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}
