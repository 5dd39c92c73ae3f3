// Package leaderboard persists run scores per player name as JSON on disk.
// The on-disk shape is a map of name -> entries so names double as the list
// of known players for the name-entry screen.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// Entry is one finished run.
type Entry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Record is an Entry with its owner, used for ranked views.
type Record struct {
	Name  string
	Score int
	Date  string
}

// Store is a leaderboard bound to one file.
type Store struct {
	path    string
	entries map[string][]Entry
}

// Open loads the leaderboard at path. A missing file yields an empty store;
// a malformed file is an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: map[string][]Entry{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("no leaderboard file, starting empty", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("leaderboard: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.entries); err != nil {
		return nil, fmt.Errorf("leaderboard: parse %s: %w", path, err)
	}
	return s, nil
}

// Names returns the known player names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Add records a score for name, dated now, and writes the file through.
func (s *Store) Add(name string, score int) error {
	return s.add(name, score, time.Now())
}

func (s *Store) add(name string, score int, at time.Time) error {
	s.entries[name] = append(s.entries[name], Entry{
		Score: score,
		Date:  at.Format("2006-01-02 15:04"),
	})
	b, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("leaderboard: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("leaderboard: write %s: %w", s.path, err)
	}
	return nil
}

// Top returns the n best runs across all players, score descending.
func (s *Store) Top(n int) []Record {
	var all []Record
	for name, es := range s.entries {
		for _, e := range es {
			all = append(all, Record{Name: name, Score: e.Score, Date: e.Date})
		}
	}
	sortRecords(all)
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// TopFor returns the n best runs for one player, score descending.
func (s *Store) TopFor(name string, n int) []Record {
	var recs []Record
	for _, e := range s.entries[name] {
		recs = append(recs, Record{Name: name, Score: e.Score, Date: e.Date})
	}
	sortRecords(recs)
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

func sortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
