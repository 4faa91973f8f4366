// Package storage provides the small persistent key-value store the filter
// selections are written to.
package storage

import "context"

// KV is a string key-value store. Get reports ok=false for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// MemoryPath selects the in-memory store instead of a database file.
const MemoryPath = ":memory:"

// Open returns a SQLite-backed store for path, or an in-memory store when
// path is empty or MemoryPath.
func Open(path string) (KV, error) {
	if path == "" || path == MemoryPath {
		return NewMemory(), nil
	}
	return NewSQLite(path)
}
