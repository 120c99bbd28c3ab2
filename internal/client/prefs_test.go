package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStorage wraps memoryStorage to expose raw persisted values.
type recordingStorage struct {
	memoryStorage
}

func TestNewPreferencesStore_DefaultsToShowingStations(t *testing.T) {
	store := NewPreferencesStore(nil)

	assert.True(t, store.ShowStations())
}

func TestPreferencesStore_PersistsChanges(t *testing.T) {
	storage := &recordingStorage{}
	store := NewPreferencesStore(storage)

	store.SetShowStations(false)

	raw, ok := storage.Get(preferencesKey)
	require.True(t, ok)
	assert.JSONEq(t, `{"showStations":false}`, raw)

	// A fresh store sees the persisted value.
	reloaded := NewPreferencesStore(storage)
	assert.False(t, reloaded.ShowStations())
}

func TestPreferencesStore_Toggle(t *testing.T) {
	store := NewPreferencesStore(nil)

	store.ToggleStations()
	assert.False(t, store.ShowStations())
	store.ToggleStations()
	assert.True(t, store.ShowStations())
}

func TestPreferencesStore_CorruptPayloadDiscarded(t *testing.T) {
	storage := &recordingStorage{}
	storage.Set(preferencesKey, "{not json")

	store := NewPreferencesStore(storage)

	// Corrupt state is dropped and defaults apply.
	assert.True(t, store.ShowStations())
	_, ok := storage.Get(preferencesKey)
	assert.False(t, ok)
}

func TestPreferencesStore_NotifiesSubscribers(t *testing.T) {
	store := NewPreferencesStore(nil)

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	store.SetShowStations(false)
	assert.Equal(t, 1, notified)

	unsubscribe()
	store.ToggleStations()
	assert.Equal(t, 1, notified)
}
