// Package store is the persistent key-value medium behind every collection.
// String keys, string values, no transactions: the read-modify-write cycles
// above it assume a single writer per key, which the request flow guarantees
// for collections and the audit worker for its own key.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable marks a backing medium that cannot be reached or opened.
// Callers treat it as fatal for the operation, never as "no data".
var ErrUnavailable = errors.New("store unavailable")

type Store interface {
	// Get returns the value for key and whether it exists. A missing key is
	// not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
