// Package history keeps the lookup history file (history.json): which words
// were looked up, how often, and when.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sonnes/ydcv/core"
)

// tempPattern names the scratch file WriteFile renames over the history file.
const tempPattern = ".history-*.json"

// Record tracks lookups of a single word.
type Record struct {
	Word      string    `json:"word"`
	Count     int       `json:"count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// History holds lookup records, most recent first.
type History struct {
	Records []Record `json:"records"`
}

// ReadFile reads a history file from disk. Returns an empty History if the
// file does not exist.
func ReadFile(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &History{}, nil
	}
	if err != nil {
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Record notes a lookup of word at now. Words are matched after
// normalization; blank words are ignored.
func (h *History) Record(word string, now time.Time) {
	word = core.NormalizeWord(word)
	if word == "" {
		return
	}

	for i, r := range h.Records {
		if r.Word == word {
			h.Records[i].Count++
			h.Records[i].LastSeen = now
			h.sort()
			return
		}
	}
	h.Records = append(h.Records, Record{Word: word, Count: 1, FirstSeen: now, LastSeen: now})
	h.sort()
}

// Top returns up to n most recent records. n <= 0 returns all.
func (h *History) Top(n int) []Record {
	if n <= 0 || n >= len(h.Records) {
		return h.Records
	}
	return h.Records[:n]
}

func (h *History) sort() {
	sort.SliceStable(h.Records, func(i, j int) bool {
		return h.Records[i].LastSeen.After(h.Records[j].LastSeen)
	})
}

// WriteFile saves the history to path, creating its directory. The file is
// replaced in one rename so a crash mid-write never leaves a truncated
// history behind.
func (h *History) WriteFile(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp history: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
