package persistence

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger"
)

// Ensure Badger implements KV
var _ KV = (*Badger)(nil)

// Badger implements KV on top of a badger database directory.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) a badger database rooted at dir.
func NewBadger(dir string) (*Badger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// badger's own logger is too chatty for a local store
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &Badger{db: db}, nil
}

// Read returns the value stored under key, or ok=false if absent.
func (b *Badger) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Write stores value under key.
func (b *Badger) Write(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (b *Badger) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	return b.db.Close()
}
