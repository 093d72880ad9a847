package kv

import (
	"context"
	"errors"
)

// Entry is a single key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a generic ordered string-keyed store. Values are opaque JSON
// blobs; prefix scans return entries in ascending key order.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}

// ErrKeyNotFound is returned when a key does not exist in the store.
var ErrKeyNotFound = errors.New("key not found")

// ErrStoreUnavailable wraps backend I/O failures (connection loss,
// timeouts). Callers may retry with backoff; the store itself never does.
var ErrStoreUnavailable = errors.New("key-value store unavailable")
