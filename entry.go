package agedcache

import "time"

// entry is both the index value and a node of the expiry list.
// Sentinels are entries with a zero key, value and expiresAt.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time

	prev *entry[K, V]
	next *entry[K, V]
}

// isExpired reports whether the entry is gone at now. An entry whose
// expiresAt equals now is already expired.
func (e *entry[K, V]) isExpired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}
