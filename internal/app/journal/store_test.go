package journal_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jodansky/mindtext-journal/internal/adapters/storage/memory"
	"github.com/Jodansky/mindtext-journal/internal/app/journal"
	"github.com/Jodansky/mindtext-journal/internal/domain"
)

func TestLoadFallsBackToSeedWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := journal.NewStore(memory.NewKV())

	store.Load(ctx)

	entries := store.List()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.NotEmpty(t, e.UserText)
		assert.NotEmpty(t, e.Keywords)
		assert.Equal(t, "Summary", e.Title)
	}
	assert.Equal(t, []string{"presentation", "anxiety", "confidence", "work"}, entries[0].Keywords)
}

func TestLoadFallsBackToSeedWhenCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	require.NoError(t, kv.Set("entries", []byte("{not json")))

	store := journal.NewStore(kv)
	store.Load(ctx)

	assert.Len(t, store.List(), 3)
}

func TestLoadFallsBackToSeedWhenWrongShape(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	require.NoError(t, kv.Set("entries", []byte(`{"id":"not-a-list"}`)))

	store := journal.NewStore(kv)
	store.Load(ctx)

	assert.Len(t, store.List(), 3)
}

func TestNormalizeIdempotent(t *testing.T) {
	store := journal.NewStore(memory.NewKV())

	entry := domain.Entry{
		ID:            "e1",
		UserText:      "Grateful for the morning run.",
		AssistantText: "A strong start carries through the day.",
		Keywords:      []string{"custom", "curated"},
	}

	once := store.Normalize(entry)
	twice := store.Normalize(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"custom", "curated"}, twice.Keywords, "preset keywords must survive")
}

func TestNormalizeDerivesKeywordsWhenMissing(t *testing.T) {
	store := journal.NewStore(memory.NewKV())

	got := store.Normalize(domain.Entry{
		UserText:      "Felt gratitude after the evening walk.",
		AssistantText: "That calm is worth protecting.",
	})

	assert.Contains(t, got.Keywords, "gratitude")
	assert.Contains(t, got.Keywords, "evening")
	assert.Equal(t, "Summary", got.Title)
}

func TestAddPersistsAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	store := journal.NewStore(kv)
	store.Load(ctx)

	added, err := store.Add(ctx, "Wrote three pages about the move.", "Change is settling in.")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	assert.Contains(t, added.Keywords, "pages")

	// A fresh store over the same storage sees the new entry.
	reloaded := journal.NewStore(kv)
	reloaded.Load(ctx)
	entries := reloaded.List()
	require.Len(t, entries, 4)
	assert.Equal(t, added.ID, entries[3].ID)
}

func TestAddRejectsEmptyUserText(t *testing.T) {
	ctx := context.Background()
	store := journal.NewStore(memory.NewKV())
	store.Load(ctx)

	_, err := store.Add(ctx, "   \n ", "a summary")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, store.List(), 3, "store must not change on rejected add")
}

func TestRemoveFiltersAndPersists(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	store := journal.NewStore(kv)
	store.Load(ctx)

	require.NoError(t, store.Remove(ctx, "entry-2"))
	assert.Len(t, store.List(), 2)

	raw, err := kv.Get("entries")
	require.NoError(t, err)
	var stored []domain.Entry
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, 2)

	// Removing an unknown id is a no-op.
	require.NoError(t, store.Remove(ctx, "entry-404"))
	assert.Len(t, store.List(), 2)
}
