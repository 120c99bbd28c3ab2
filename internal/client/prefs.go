package client

import (
	"encoding/json"
	"sync"
)

const preferencesKey = "map-preferences"

// Storage is the persistence port for view preferences. Implementations
// may be backed by any medium; a nil Storage falls back to memory.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// memoryStorage is the in-memory fallback used when no platform
// storage is available.
type memoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

func (m *memoryStorage) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

type preferences struct {
	ShowStations bool `json:"showStations"`
}

// PreferencesStore holds persisted map view preferences.
type PreferencesStore struct {
	mu      sync.Mutex
	storage Storage
	prefs   preferences

	observers observers
}

// NewPreferencesStore loads persisted preferences from storage,
// defaulting to showing the stations layer.
func NewPreferencesStore(storage Storage) *PreferencesStore {
	if storage == nil {
		storage = &memoryStorage{}
	}

	store := &PreferencesStore{
		storage: storage,
		prefs:   preferences{ShowStations: true},
	}

	if raw, ok := storage.Get(preferencesKey); ok {
		var loaded preferences
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			store.prefs = loaded
		} else {
			// Corrupt payloads are discarded rather than surfaced.
			storage.Remove(preferencesKey)
		}
	}

	return store
}

// Subscribe registers a callback invoked on every preference change.
func (s *PreferencesStore) Subscribe(fn func()) func() {
	return s.observers.subscribe(fn)
}

// ShowStations reports whether the stations layer is visible.
func (s *PreferencesStore) ShowStations() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.ShowStations
}

// SetShowStations sets the stations layer visibility and persists it.
func (s *PreferencesStore) SetShowStations(value bool) {
	s.mu.Lock()
	s.prefs.ShowStations = value
	s.persistLocked()
	s.mu.Unlock()
	s.observers.notify()
}

// ToggleStations flips the stations layer visibility.
func (s *PreferencesStore) ToggleStations() {
	s.mu.Lock()
	s.prefs.ShowStations = !s.prefs.ShowStations
	s.persistLocked()
	s.mu.Unlock()
	s.observers.notify()
}

func (s *PreferencesStore) persistLocked() {
	if raw, err := json.Marshal(s.prefs); err == nil {
		s.storage.Set(preferencesKey, string(raw))
	}
}
