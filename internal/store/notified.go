// Package store provides data persistence: the JSON notified-set used
// for deduplication and the SQLite journal of detected events.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "buyback-detector/internal/errors"
)

// NotifiedRecord is the persisted entry for one notified event.
type NotifiedRecord struct {
	NotifiedAt string `json:"notified_at"`
}

// NotifiedStore is the persisted set of already-notified event ids. It
// is loaded once per run, mutated in memory and saved at most once; it
// is not safe against concurrent runs sharing the same file.
type NotifiedStore struct {
	path    string
	entries map[string]NotifiedRecord
}

// OpenNotified loads the notified-set at path. A missing file yields an
// empty set. An existing-but-unreadable file, or malformed JSON, is an
// error: dedup correctness depends on trusting this state, so it is
// never silently reset.
func OpenNotified(path string) (*NotifiedStore, error) {
	s := &NotifiedStore{
		path:    path,
		entries: make(map[string]NotifiedRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrStoreCorrupt, path, err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", apperrors.ErrStoreCorrupt, path, err)
	}

	return s, nil
}

// Contains reports whether an event id has already been notified.
func (s *NotifiedStore) Contains(eventID string) bool {
	_, ok := s.entries[eventID]
	return ok
}

// Record marks an event id as notified at the given time. It only takes
// effect on disk after Save.
func (s *NotifiedStore) Record(eventID string, at time.Time) {
	s.entries[eventID] = NotifiedRecord{NotifiedAt: at.UTC().Format(time.RFC3339)}
}

// Len returns the number of notified entries.
func (s *NotifiedStore) Len() int {
	return len(s.entries)
}

// Save persists the full set, replacing the previous file. It writes to
// a temp file in the same directory and renames it over the target, so a
// crash mid-write leaves the old state intact.
func (s *NotifiedStore) Save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling notified set: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".notified-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	return nil
}
