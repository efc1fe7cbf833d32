// Package collection serializes ordered record lists under single store keys.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eztechpal/eztech-portal/internal/store"
)

// ErrCorrupt wraps a decode failure for data already in the store. Corrupt
// data is surfaced, never replaced with an empty list: defaulting would mask
// the corruption and the next Save would overwrite whatever was there.
type ErrCorrupt struct {
	Key string
	Err error
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("corrupt collection %q: %v", e.Key, e.Err)
}

func (e *ErrCorrupt) Unwrap() error { return e.Err }

// Collection is one named, independently serialized list of records.
// Writers follow load, mutate, save; there is no partial update.
type Collection[T any] struct {
	store store.Store
	key   string
}

func New[T any](s store.Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

func (c *Collection[T]) Key() string { return c.key }

// Load returns every record in insertion order. A key that has never been
// written loads as an empty list.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, &ErrCorrupt{Key: c.key, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces the whole list.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(data))
}

// Append loads, appends one record and saves back.
func (c *Collection[T]) Append(ctx context.Context, record T) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	return c.Save(ctx, append(records, record))
}
