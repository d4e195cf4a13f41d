package diskvstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	diskvstore "github.com/Jodansky/mindtext-journal/internal/adapters/storage/diskv"
	"github.com/Jodansky/mindtext-journal/internal/domain"
)

func TestRoundTrip(t *testing.T) {
	store, err := diskvstore.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("entries")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set("entries", []byte(`[{"id":"e1"}]`)))

	got, err := store.Get("entries")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"e1"}]`), got)
}

func TestSetOverwrites(t *testing.T) {
	store, err := diskvstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("draft", []byte("one")))
	require.NoError(t, store.Set("draft", []byte("two")))

	got, err := store.Get("draft")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := diskvstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("draft", []byte("x")))
	require.NoError(t, store.Remove("draft"))

	_, err = store.Get("draft")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	// Removing an absent key is a no-op.
	require.NoError(t, store.Remove("draft"))
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := diskvstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("entries", []byte("persisted")))

	second, err := diskvstore.New(dir)
	require.NoError(t, err)
	got, err := second.Get("entries")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestEmptyBasePathRejected(t *testing.T) {
	_, err := diskvstore.New("")
	assert.Error(t, err)
}
