// Package history is a JSON-backed replacement for the original
// implementation's SQLite setup_repository: it remembers, per
// (car_id, track_id), the best lap time and conditions a profile has
// produced, so a caller can bias Profile defaults across sessions without
// a database driver.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/raceeng/setupgen/internal/model"
)

// Entry is one remembered result for a car/track pair.
type Entry struct {
	CarID      string         `json:"car_id"`
	TrackID    string         `json:"track_id"`
	BestLapSec float64        `json:"best_lap_sec"`
	Conditions model.Conditions `json:"conditions"`
	Profile    model.Profile  `json:"profile"`
	RecordedAt time.Time      `json:"recorded_at"`
}

func key(carID, trackID string) string {
	return carID + "::" + trackID
}

// Store is a process-local, file-backed table of Entry, one JSON file per
// Store, guarded by a single RWMutex (the teacher's server.Config
// discipline: reads take RLock, writes take Lock and then persist).
type Store struct {
	path string

	mu      sync.RWMutex
	entries map[string]Entry
}

// Open loads a Store from path, creating an empty one if the file does
// not yet exist. A read error other than "not found" is returned.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	for _, e := range list {
		s.entries[key(e.CarID, e.TrackID)] = e
	}
	return s, nil
}

// Best returns the remembered entry for a car/track pair, if any.
func (s *Store) Best(carID, trackID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key(carID, trackID)]
	return e, ok
}

// Record stores a new result, replacing any prior entry for the same
// car/track only if the new lap time is faster (or no entry exists yet),
// then persists the store to disk.
func (s *Store) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(e.CarID, e.TrackID)
	if existing, ok := s.entries[k]; ok && existing.BestLapSec <= e.BestLapSec {
		return nil
	}
	s.entries[k] = e
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	list := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		list = append(list, e)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Len reports how many car/track entries are currently remembered.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
