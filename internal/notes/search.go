package notes

import (
	"time"

	"github.com/sahilm/fuzzy"
)

// Match is a note found by Search.
type Match struct {
	Date  time.Time
	Index int
	Text  string
}

type matchSource []Match

func (m matchSource) String(i int) string { return m[i].Text }
func (m matchSource) Len() int            { return len(m) }

// All returns every note in date order, preserving per-date order.
func (s *Store) All() []Match {
	var all []Match
	for _, key := range s.Dates() {
		date, err := ParseDate(key)
		if err != nil {
			continue
		}
		for i, text := range s.notes[key] {
			all = append(all, Match{Date: date, Index: i, Text: text})
		}
	}
	return all
}

// Search fuzzy-matches query against every note, best match first. An empty
// query returns all notes in date order.
func (s *Store) Search(query string) []Match {
	all := s.All()
	if query == "" {
		return all
	}
	found := fuzzy.FindFrom(query, matchSource(all))
	out := make([]Match, len(found))
	for i, f := range found {
		out[i] = all[f.Index]
	}
	return out
}
