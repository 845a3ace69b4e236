package domain

import "errors"

// ErrTopicNotFound is returned when a topic name is absent from the catalog.
var ErrTopicNotFound = errors.New("topic not found")

// ErrCacheMiss is returned by render caches when no entry exists for a key.
var ErrCacheMiss = errors.New("render cache miss")
