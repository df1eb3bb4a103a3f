package cache

import "errors"

// Common cache errors
var (
	// ErrItemNotFound indicates that the item is not in the cache
	ErrItemNotFound = errors.New("cached item not found")

	// ErrFilterSetNotFound indicates that no snapshot exists for the fingerprint
	ErrFilterSetNotFound = errors.New("filter set not found")

	// ErrCacheClosed indicates that the cache storage is closed
	ErrCacheClosed = errors.New("cache storage is closed")
)
