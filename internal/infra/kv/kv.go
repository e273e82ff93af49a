// Package kv is the durable key-value port the cart snapshot, the pending
// action record and the event feed are stored under. Keys are namespaced
// strings owned by exactly one writer; consistency across writers is
// last-write-wins.
package kv

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns ErrNotFound on a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX writes only if the key is absent and reports whether it won.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	// Remove is a no-op on a missing key.
	Remove(ctx context.Context, key string) error
	// RPush appends to a list under key, trimming it to at most maxLen entries.
	RPush(ctx context.Context, key string, value []byte, maxLen int64) error
	// PopAll atomically drains the list under key.
	PopAll(ctx context.Context, key string) ([][]byte, error)
}
