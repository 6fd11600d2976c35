// Package store owns the persisted state of the drink tracker: the user
// settings, today's session, the archived day history and the favorite-SKU
// counters. Each lives in its own key/value slot behind an injected
// Backend. Stored blobs are normalized on every read, so a malformed or
// hand-edited blob degrades to defaults instead of an error; the only hard
// failure a Store surfaces is the backend itself being unavailable.
package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Slot keys are versioned independently; bumping one leaves the others
// readable.
const (
	KeySettings    = "alc_settings_v1"
	KeySession     = "alc_today_session_v2"
	KeySessionDate = "alc_today_session_date_v2"
	KeyHistory     = "alc_history_v2"
	KeyFavorites   = "alc_favorite_skus_v2"
)

// DefaultHistoryDays is the default archived-day retention window.
const DefaultHistoryDays = 30

// Backend is the key/value persistence capability a Store is built on.
// Get reports whether the key existed; a single Put is atomic.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Store is the single writer of all persisted slots. Now is the clock used
// for "today" decisions and defaults to time.Now; tests override it.
type Store struct {
	backend Backend

	MaxHistoryDays int
	Now            func() time.Time
}

// New returns a Store over the given backend.
func New(backend Backend) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("store: backend is nil")
	}
	return &Store{
		backend:        backend,
		MaxHistoryDays: DefaultHistoryDays,
		Now:            time.Now,
	}, nil
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// LocalDateKey derives the YYYY-MM-DD day key in local calendar time. All
// staleness decisions go through this one function so the store and its
// callers cannot disagree about what day it is.
func LocalDateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// readSlot returns the decoded JSON value of a slot, or nil when the slot
// is absent or its blob does not parse. Only backend failures are errors.
func (s *Store) readSlot(key string) (any, error) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		// corrupt blob reads as empty
		return nil, nil
	}
	return v, nil
}

func (s *Store) writeSlot(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := s.backend.Put(key, raw); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
