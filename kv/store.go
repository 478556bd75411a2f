// Package kv is the device-local persistence substrate for the sync agent.
// The queue and cache logic only depend on the Store interface so they can
// run against the in-memory implementation in tests and the SQLite one on
// devices.
package kv

// Store is a minimal durable key-value store.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
