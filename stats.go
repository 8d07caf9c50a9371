package agedcache

import "sync/atomic"

// stats holds cache statistics using atomic counters for lock-free updates.
type stats struct {
	hits         atomic.Int64
	misses       atomic.Int64
	expirations  atomic.Int64
	replacements atomic.Int64
}

func (s *stats) hit() {
	s.hits.Add(1)
}

func (s *stats) miss() {
	s.misses.Add(1)
}

func (s *stats) expire(n int) {
	s.expirations.Add(int64(n))
}

func (s *stats) replace() {
	s.replacements.Add(1)
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits         int64
	Misses       int64
	Expirations  int64
	Replacements int64
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// snapshot returns a point-in-time copy of the counters.
func (s *stats) snapshot() Snapshot {
	return Snapshot{
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
		Expirations:  s.expirations.Load(),
		Replacements: s.replacements.Load(),
	}
}
