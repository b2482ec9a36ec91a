// Package kv defines the string key-value storage contract quotation
// snapshots are persisted through, with in-memory, on-disk and postgres
// implementations.
package kv

import "context"

// Store is an append-oriented string key-value store. Set never alters
// other keys; there is no delete.
type Store interface {
	Set(ctx context.Context, key, value string) error
	Keys(ctx context.Context) ([]string, error)
	GetMulti(ctx context.Context, keys []string) (map[string]string, error)
}
