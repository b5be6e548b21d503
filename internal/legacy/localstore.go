// Package legacy reads the previous storage generation (a flat key/value
// store of raw strings, one file per key) and migrates it into the document
// store.
package legacy

import (
	"os"
	"path/filepath"
)

// FlatStore is the old flat key/value store: each key is a file under root
// holding the raw stored string. It mirrors how the first storage
// generation kept everything as plain strings.
type FlatStore struct {
	root string
}

// NewFlatStore returns a store rooted at dir. The directory is not created:
// an absent directory simply means there is nothing left to migrate.
func NewFlatStore(dir string) *FlatStore {
	return &FlatStore{root: dir}
}

func (s *FlatStore) path(key string) string {
	return filepath.Join(s.root, key)
}

// Get reads the raw string stored under key. The second return reports
// whether the key exists.
func (s *FlatStore) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

// Set writes a raw string under key, creating the root if needed.
func (s *FlatStore) Set(key, value string) error {
	if err := os.MkdirAll(s.root, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

// Delete removes a key; deleting a missing key is a no-op.
func (s *FlatStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Wipe removes every stored key. A missing root is a no-op.
func (s *FlatStore) Wipe() error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the keys present in the store.
func (s *FlatStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}
