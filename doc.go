// Package agedcache provides a generic in-memory cache whose entries expire
// after a per-entry retention.
//
// # Overview
//
// Every entry carries an absolute expiration time computed at Put. A read after
// that instant behaves as if the entry were absent. Entries live in a map for
// constant-time lookup and in a list ordered by expiration, so all expired
// entries sit at the front of the list and a purge never scans live ones.
//
// There is no capacity bound and no recency-based eviction: entries leave the
// cache only by expiring, by Delete, or by Clear.
//
// # Basic Usage
//
//	cache := agedcache.New[string, int]()
//
//	if err := cache.Put("answer", 42, time.Minute); err != nil {
//		return err
//	}
//
//	if v, ok := cache.Get("answer"); ok {
//		fmt.Println(v)
//	}
//
//	fmt.Println(cache.Size()) // purges expired entries first
//
// # Expiration
//
// An entry expires once the clock reaches its expiration time. Get checks the
// entry it finds but never removes it. Put, Size, IsEmpty, Purge and Delete
// first purge every expired entry from the front of the list.
//
// Putting a key that is already present replaces the old entry, including its
// expiration. A negative retention is rejected with ErrNegativeRetention.
//
// # Testing
//
// Inject a custom clock to control time in tests:
//
//	type fakeClock struct{ now time.Time }
//	func (c *fakeClock) Now() time.Time { return c.now }
//
//	clock := &fakeClock{now: time.Now()}
//	cache := agedcache.New[string, int](agedcache.WithClock[string, int](clock))
//
//	if err := cache.Put("key", 42, time.Minute); err != nil {
//		return err
//	}
//	clock.now = clock.now.Add(2 * time.Minute)
//	_, ok := cache.Get("key") // ok == false
//
// # Thread Safety
//
// All Cache methods are safe for concurrent use. The cache uses a sync.RWMutex
// internally; Get takes the read lock and every purging method the write lock.
// Callbacks run while the lock is held and must not call back into the cache.
// OnHit and OnMiss run under the read lock, so concurrent Gets may invoke them
// in parallel.
package agedcache
