package agedcache

import (
	"errors"
	"fmt"
)

// expiryList keeps entries ordered by expiresAt, earliest first, between two
// sentinels. Expired entries are therefore always contiguous at the front.
type expiryList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	len  int
}

func newExpiryList[K comparable, V any]() *expiryList[K, V] {
	l := &expiryList[K, V]{
		head: &entry[K, V]{},
		tail: &entry[K, V]{},
	}
	l.reset()
	return l
}

func (l *expiryList[K, V]) reset() {
	l.head.next = l.tail
	l.tail.prev = l.head
	l.len = 0
}

// front returns the entry expiring first, or nil if the list is empty.
func (l *expiryList[K, V]) front() *entry[K, V] {
	if l.head.next == l.tail {
		return nil
	}
	return l.head.next
}

// insertSorted links e after every entry with expiresAt <= e.expiresAt, so
// entries sharing an expiration keep their insertion order. The walk starts
// at the tail because new entries usually expire last.
func (l *expiryList[K, V]) insertSorted(e *entry[K, V]) {
	at := l.tail.prev
	for at != l.head && at.expiresAt.After(e.expiresAt) {
		at = at.prev
	}
	l.insertAfter(e, at)
}

func (l *expiryList[K, V]) insertAfter(e, at *entry[K, V]) {
	next := at.next
	e.prev = at
	e.next = next
	next.prev = e
	at.next = e
	l.len++
}

func (l *expiryList[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.len--
}

// check walks the list and reports the first broken structural invariant.
func (l *expiryList[K, V]) check() error {
	if l.head.prev != nil || l.tail.next != nil {
		return errors.New("sentinel linked outside list")
	}

	n := 0
	prev := l.head
	for e := l.head.next; e != l.tail; e = e.next {
		if e == nil {
			return fmt.Errorf("list broken after %d entries", n)
		}
		if e.prev != prev {
			return fmt.Errorf("entry %v: prev link mismatch", e.key)
		}
		if prev != l.head && e.expiresAt.Before(prev.expiresAt) {
			return fmt.Errorf("entry %v expires before its predecessor %v", e.key, prev.key)
		}
		prev = e
		n++
	}
	if l.tail.prev != prev {
		return errors.New("tail prev link mismatch")
	}
	if n != l.len {
		return fmt.Errorf("list holds %d entries, length says %d", n, l.len)
	}
	return nil
}
