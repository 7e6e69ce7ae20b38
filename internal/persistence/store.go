// Package persistence provides the durable key-value storage boundary for
// the session and project stores.
package persistence

// Well-known keys used by the stores. Values are JSON encodings of the
// corresponding models.
const (
	SessionKey  = "consent-map-auth"
	ProjectsKey = "consent-map-projects"
)

// KV defines the interface for durable key-value storage.
// This abstraction allows swapping storage backends (SQLite, Badger,
// in-memory) without changing the store packages.
//
// Absence is a first-class outcome, distinct from failure: Read reports a
// missing key as (nil, false, nil), never as an error.
type KV interface {
	// Read returns the value stored under key, or ok=false if the key
	// has never been written (or was deleted).
	Read(key string) (value []byte, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the backend.
	Close() error
}
