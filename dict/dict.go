// Package dict looks up words in a local dictionary and returns them in the
// lookup entry format.
package dict

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sonnes/ydcv/core"
)

// ErrNotFound is returned when the dictionary has no entry for a word.
var ErrNotFound = errors.New("word not found")

// Reader resolves words to lookup entries.
type Reader interface {
	// Lookup returns the entry for word. Matching ignores case and
	// surrounding whitespace.
	Lookup(word string) (*core.Entry, error)
}

// File reads entries from a JSON file holding an array of entries. The file
// is loaded on first lookup.
type File struct {
	// Path is the dictionary file location.
	Path string

	once    sync.Once
	entries map[string]*core.Entry
	err     error
}

// Open creates a File reader for path.
func Open(path string) *File {
	return &File{Path: path}
}

// Lookup implements Reader.
func (f *File) Lookup(word string) (*core.Entry, error) {
	f.once.Do(f.load)
	if f.err != nil {
		return nil, f.err
	}

	e, ok := f.entries[core.NormalizeWord(word)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ErrNotFound)
	}
	return e, nil
}

// Len returns the number of indexed entries, loading the file if needed.
func (f *File) Len() (int, error) {
	f.once.Do(f.load)
	return len(f.entries), f.err
}

func (f *File) load() {
	fh, err := os.Open(f.Path)
	if err != nil {
		f.err = fmt.Errorf("open dictionary: %w", err)
		return
	}
	defer fh.Close()

	f.entries, f.err = decode(fh)
	if f.err != nil {
		f.err = fmt.Errorf("read dictionary %s: %w", f.Path, f.err)
	}
}

// decode parses a JSON array of entries and indexes them by normalized query.
// Later duplicates win.
func decode(r io.Reader) (map[string]*core.Entry, error) {
	var raw []*core.Entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	index := make(map[string]*core.Entry, len(raw))
	for _, e := range raw {
		if e == nil {
			continue
		}
		key := core.NormalizeWord(e.Query)
		if key == "" {
			continue
		}
		index[key] = e
	}
	return index, nil
}
