// Package draft persists the in-progress conversation separately from the
// saved archive, so a half-written entry survives a restart.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Jodansky/mindtext-journal/internal/domain"
	"github.com/Jodansky/mindtext-journal/internal/observability"
)

const storageKey = "draft"

// Session owns the durable draft record. Writes are gated on Load having
// completed: a Save issued before the stored draft has been read is dropped,
// otherwise startup defaults would clobber whatever was saved last run.
type Session struct {
	mu     sync.Mutex
	kv     domain.KeyValue
	loaded bool
	draft  domain.Draft
}

// NewSession creates a Session over the given storage. Call Load before
// any Save takes effect.
func NewSession(kv domain.KeyValue) *Session {
	return &Session{kv: kv}
}

// Load reads the persisted draft. A missing or corrupt record yields an
// empty thread and empty input; corruption is logged, never returned.
func (s *Session) Load(ctx context.Context) domain.Draft {
	log := observability.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loaded = true }()

	raw, err := s.kv.Get(storageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Error("failed to read stored draft", "error", err)
		}
		s.draft = domain.Draft{}
		return s.draft
	}

	var stored domain.Draft
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Error("stored draft is corrupt, starting empty", "error", err)
		s.draft = domain.Draft{}
		return s.draft
	}

	s.draft = stored
	return s.draft
}

// Save persists the thread and pending input. Typing placeholders are
// stripped first; one must never survive a reload. Persistence failures
// are logged and swallowed, a draft write is never worth failing a send.
func (s *Session) Save(ctx context.Context, thread []domain.Message, input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return
	}

	cleaned := make([]domain.Message, 0, len(thread))
	for _, m := range thread {
		if m.IsTyping {
			continue
		}
		cleaned = append(cleaned, m)
	}

	s.draft = domain.Draft{Thread: cleaned, Input: input}

	data, err := json.Marshal(s.draft)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("failed to encode draft", "error", err)
		return
	}
	if err := s.kv.Set(storageKey, data); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to persist draft", "error", err)
	}
}

// Clear resets the draft and erases the durable record.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = domain.Draft{}
	if err := s.kv.Remove(storageKey); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to erase draft", "error", err)
	}
}

// Current returns the last loaded or saved draft state.
func (s *Session) Current() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Loaded reports whether the initial load has completed.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
