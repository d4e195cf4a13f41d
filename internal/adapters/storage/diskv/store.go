// Package diskvstore provides the durable key-value backend for entries
// and drafts, one file per key under a base directory.
package diskvstore

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

// Store implements domain.KeyValue on top of diskv.
type Store struct {
	d *diskv.Diskv
}

// New creates a Store rooted at basePath, creating the directory when
// missing.
func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}

	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, domain.ErrKeyNotFound
	}
	return s.d.Read(key)
}

func (s *Store) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *Store) Remove(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
