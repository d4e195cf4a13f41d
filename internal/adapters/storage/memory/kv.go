package memory

import (
	"sync"

	"github.com/Jodansky/mindtext-journal/internal/domain"
)

// KV is an in-memory implementation of domain.KeyValue. It is NOT
// persistent and is only suitable for tests and local mode.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV creates an empty in-memory key-value store.
func NewKV() *KV {
	return &KV{
		data: make(map[string][]byte),
	}
}

func (s *KV) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *KV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *KV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
