package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groomstation/internal/entities"
)

func TestDraftStorePutGetClear(t *testing.T) {
	store := NewDraftStore(time.Minute)

	_, ok := store.Get("c1")
	assert.False(t, ok)

	store.Put("c1", &entities.DraftSelection{StationID: "S1", Time: "09:00"})
	draft, ok := store.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "09:00", draft.Time)
	assert.False(t, draft.StagedAt.IsZero())

	// Staging again replaces the prior draft.
	store.Put("c1", &entities.DraftSelection{StationID: "S1", Time: "10:00"})
	draft, ok = store.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "10:00", draft.Time)

	store.Clear("c1")
	_, ok = store.Get("c1")
	assert.False(t, ok)
}

func TestDraftStoreExpiry(t *testing.T) {
	store := NewDraftStore(15 * time.Minute)
	current := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Put("c1", &entities.DraftSelection{StationID: "S1"})

	current = current.Add(14 * time.Minute)
	_, ok := store.Get("c1")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = store.Get("c1")
	assert.False(t, ok, "expired draft behaves as never staged")
}

func TestDraftStorePurgeExpired(t *testing.T) {
	store := NewDraftStore(10 * time.Minute)
	current := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Put("c1", &entities.DraftSelection{})
	store.Put("c2", &entities.DraftSelection{})
	current = current.Add(5 * time.Minute)
	store.Put("c3", &entities.DraftSelection{})

	current = current.Add(7 * time.Minute)
	assert.Equal(t, 2, store.PurgeExpired())

	_, ok := store.Get("c3")
	assert.True(t, ok)
}

func TestDraftStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewDraftStore(0)
	current := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Put("c1", &entities.DraftSelection{})
	current = current.Add(1000 * time.Hour)
	_, ok := store.Get("c1")
	assert.True(t, ok)
	assert.Zero(t, store.PurgeExpired())
}
