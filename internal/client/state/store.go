// Package state implements the client-held persistent storage: a small
// key-value store plus the typed persistor the screens use to round-trip
// session, search, and selected-entity state across navigations.
package state

import "context"

// Store is a key-value store with JSON-serialized values. Get returns
// (nil, nil) for an absent key. SetMany writes all pairs atomically, so a
// concurrent reader never observes a torn mix of old and new values.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, pairs map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
