package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"notecal/internal/logs"
)

// DateLayout is the ISO layout used for storage keys.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string is not yyyy-MM-dd.
var ErrInvalidDate = errors.New("invalid date, use yyyy-MM-dd")

// Store maps calendar dates to ordered lists of notes. The whole mapping is
// written back to storage after every mutation.
type Store struct {
	storage Storage
	key     string
	notes   map[string][]string
}

// Open loads the note mapping from storage. A missing, empty or malformed
// payload yields an empty store; only storage read failures are returned.
func Open(storage Storage, key string) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		storage: storage,
		key:     key,
		notes:   make(map[string][]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := s.storage.Read(s.key)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.key, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	parsed, err := Decode(raw)
	if err != nil {
		logs.Logger.Printf("Ignoring malformed note payload under %q: %v", s.key, err)
		return nil
	}
	if len(parsed) > 0 {
		s.notes = parsed
	}
	return nil
}

// Decode parses a persisted payload. Dates with no notes are dropped.
func Decode(raw []byte) (map[string][]string, error) {
	var parsed map[string][]string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	for k, v := range parsed {
		if len(v) == 0 {
			delete(parsed, k)
		}
	}
	return parsed, nil
}

// Key returns the ISO storage key for a date.
func Key(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd string in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Add appends text to the notes for date. Blank text is ignored and reported
// as not added.
func (s *Store) Add(date time.Time, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, nil
	}
	key := Key(date)
	s.notes[key] = append(s.notes[key], text)
	logs.Logger.Printf("Store: add note on %s", key)
	return true, s.Persist()
}

// Remove deletes the note at index for date. Dates without notes and
// out-of-range indexes are a no-op. The date is dropped once its last note
// is removed.
func (s *Store) Remove(date time.Time, index int) (bool, error) {
	key := Key(date)
	list, ok := s.notes[key]
	if !ok || index < 0 || index >= len(list) {
		return false, nil
	}

	updated := make([]string, 0, len(list)-1)
	updated = append(updated, list[:index]...)
	updated = append(updated, list[index+1:]...)
	if len(updated) == 0 {
		delete(s.notes, key)
	} else {
		s.notes[key] = updated
	}
	logs.Logger.Printf("Store: remove note %d on %s", index, key)
	return true, s.Persist()
}

// Notes returns a copy of the notes for date.
func (s *Store) Notes(date time.Time) []string {
	list := s.notes[Key(date)]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Count returns the number of notes on date.
func (s *Store) Count(date time.Time) int {
	return len(s.notes[Key(date)])
}

// Has reports whether date has at least one note.
func (s *Store) Has(date time.Time) bool {
	return s.Count(date) > 0
}

// Dates returns every date key with notes, sorted ascending.
func (s *Store) Dates() []string {
	keys := make([]string, 0, len(s.notes))
	for k := range s.notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of notes across all dates.
func (s *Store) Len() int {
	n := 0
	for _, list := range s.notes {
		n += len(list)
	}
	return n
}

// Snapshot returns a deep copy of the mapping.
func (s *Store) Snapshot() map[string][]string {
	out := make(map[string][]string, len(s.notes))
	for k, v := range s.notes {
		list := make([]string, len(v))
		copy(list, v)
		out[k] = list
	}
	return out
}

// Persist writes the whole mapping under the store's key.
func (s *Store) Persist() error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.storage.Write(s.key, data); err != nil {
		logs.Logger.Printf("Error persisting notes: %v", err)
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}
