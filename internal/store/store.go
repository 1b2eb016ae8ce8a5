// Package store owns the canonical accessibility settings record.
//
// The Store loads the record from a durable slot at construction, persists
// every change back to the same slot, and pushes every change through a
// presentation projection. It is the only writer of its slot.
package store

import (
	"errors"
	"sync"

	"github.com/zjrosen/a11ypanel/internal/log"
	"github.com/zjrosen/a11ypanel/internal/projection"
	"github.com/zjrosen/a11ypanel/internal/settings"
	"github.com/zjrosen/a11ypanel/internal/storage"
)

// SlotKey is the durable slot name holding the serialized record.
const SlotKey = "accessibility-settings"

// Store holds the canonical record. Construct one with New at startup and
// share the pointer; do not copy.
type Store struct {
	writeMu   sync.Mutex // serializes Update/Save so slot writes land in order
	mu        sync.RWMutex
	slot      storage.Slot
	projector projection.Projector
	current   settings.Settings
}

// New loads the persisted record (or defaults) and projects it once so the
// presentation starts in sync. A nil projector is treated as a no-op.
func New(slot storage.Slot, projector projection.Projector) *Store {
	if projector == nil {
		projector = projection.Nop{}
	}
	s := &Store{
		slot:      slot,
		projector: projector,
	}
	s.current = s.Load()
	s.projector.Project(s.current)
	return s
}

// Load reads the record from the durable slot. Missing or non-conforming
// data yields settings.Defaults(); partial records are never merged.
func (s *Store) Load() settings.Settings {
	data, err := s.slot.Read(SlotKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug(log.CatStore, "No persisted settings, using defaults")
		} else {
			log.Warn(log.CatStore, "Reading persisted settings failed, using defaults", "error", err)
		}
		return settings.Defaults()
	}

	rec, err := settings.Unmarshal(data)
	if err != nil {
		log.Debug(log.CatStore, "Persisted settings are malformed, using defaults", "error", err)
		return settings.Defaults()
	}
	return rec
}

// Current returns a snapshot of the canonical record.
func (s *Store) Current() settings.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SoundFeedback reports whether feedback sounds are enabled.
func (s *Store) SoundFeedback() bool {
	return s.Current().SoundFeedback
}

// Update replaces one field and makes the result canonical. The new record
// is persisted and projected before Update returns. Values are stored as
// given; domain checks belong to the caller.
func (s *Store) Update(c settings.Change) settings.Settings {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := s.current.With(c)
	s.current = next
	s.mu.Unlock()

	if c != nil {
		log.Debug(log.CatStore, "Setting updated", "field", c.Field(), "value", c.Value())
	}
	s.commit(next)
	return next
}

// Save replaces the whole record, with the same side effects as Update.
func (s *Store) Save(rec settings.Settings) settings.Settings {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()

	s.commit(rec)
	return rec
}

// Reset restores the default record.
func (s *Store) Reset() settings.Settings {
	return s.Save(settings.Defaults())
}

// commit persists rec and projects it. Write failures are logged, never
// returned: storage is treated as non-failing by callers.
func (s *Store) commit(rec settings.Settings) {
	data, err := settings.Marshal(rec)
	if err != nil {
		log.ErrorErr(log.CatStore, "Encoding settings failed", err)
	} else if err := s.slot.Write(SlotKey, data); err != nil {
		log.ErrorErr(log.CatStore, "Persisting settings failed", err)
	}

	s.projector.Project(rec)
}
