package journal

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jodansky/mindtext-journal/internal/domain"
	"github.com/Jodansky/mindtext-journal/internal/keywords"
	"github.com/Jodansky/mindtext-journal/internal/observability"
)

// storageKey is the single durable key holding the full ordered entry set.
const storageKey = "entries"

// TitleFunc derives a display title for an entry. It runs on every
// normalization, after keywords have been settled.
type TitleFunc func(domain.Entry) string

// DefaultTitle is the current title strategy: a constant.
func DefaultTitle(domain.Entry) string {
	return "Summary"
}

// Store holds the ordered journal entry collection and rewrites the full
// set to durable storage after every mutation. That is acceptable at the
// scale of a personal journal; it makes no attempt at incremental writes.
type Store struct {
	mu      sync.RWMutex
	kv      domain.KeyValue
	entries []domain.Entry
	title   TitleFunc
	now     func() time.Time
}

// NewStore creates a Store over the given storage. Call Load before use.
func NewStore(kv domain.KeyValue) *Store {
	return &Store{
		kv:    kv,
		title: DefaultTitle,
		now:   time.Now,
	}
}

// Normalize backfills keywords from the entry text when none are present
// and (re)computes the title. Idempotent: an entry that already carries a
// non-empty keyword set keeps it, so curated or seeded keywords survive
// repeated loads.
func (s *Store) Normalize(e domain.Entry) domain.Entry {
	if len(e.Keywords) == 0 {
		e.Keywords = keywords.Extract(e.UserText + " " + e.AssistantText)
	}
	e.Title = s.title(e)
	return e
}

// Load reads the persisted entry set. A missing key, unparsable value or
// empty list all degrade to the seed set; corruption is logged, never
// returned to the caller.
func (s *Store) Load(ctx context.Context) {
	log := observability.LoggerFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(storageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Error("failed to read stored entries, falling back to seed", "error", err)
		}
		s.entries = s.normalizeAll(seedEntries())
		return
	}

	var stored []domain.Entry
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Error("stored entries are corrupt, falling back to seed", "error", err)
		s.entries = s.normalizeAll(seedEntries())
		return
	}
	if len(stored) == 0 {
		s.entries = s.normalizeAll(seedEntries())
		return
	}

	s.entries = s.normalizeAll(stored)
	log.Info("loaded journal entries", "count", len(s.entries))
}

// List returns a copy of the entries in insertion order.
func (s *Store) List() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add constructs a new entry from the given texts, normalizes it, appends
// it and persists the full set. The entry is rejected before construction
// when userText is empty.
func (s *Store) Add(ctx context.Context, userText, assistantText string) (domain.Entry, error) {
	if strings.TrimSpace(userText) == "" {
		return domain.Entry{}, domain.NewValidationError("An entry needs some of your own words.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.Normalize(domain.Entry{
		ID:            newEntryID(),
		UserText:      userText,
		AssistantText: assistantText,
		CreatedAt:     s.now(),
	})

	s.entries = append(s.entries, entry)
	if err := s.persistLocked(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		observability.LoggerFromContext(ctx).Error("failed to persist entries", "error", err)
		return domain.Entry{}, err
	}

	observability.LoggerFromContext(ctx).Info("journal entry added", "entry_id", entry.ID)
	return entry, nil
}

// Remove deletes the entry with the given id and persists the remaining
// set. Removing an unknown id is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id domain.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return nil
	}

	s.entries = kept
	if err := s.persistLocked(); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to persist entries after remove", "error", err)
		return err
	}
	return nil
}

func (s *Store) normalizeAll(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.Normalize(e))
	}
	return out
}

func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return s.kv.Set(storageKey, data)
}

// newEntryID prefers a random UUID; the timestamp format is the fallback
// when no randomness is available.
func newEntryID() domain.EntryID {
	if id, err := uuid.NewRandom(); err == nil {
		return domain.EntryID(id.String())
	}
	return domain.EntryID(time.Now().Format("20060102150405.000000000"))
}
