package agedcache

import "errors"

// ErrNegativeRetention is returned by Put when the retention is below zero.
var ErrNegativeRetention = errors.New("agedcache: negative retention")
