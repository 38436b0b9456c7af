// Package core defines the lookup entry format: a normalized dictionary
// result that all dictionary readers produce and all renderers consume.
package core

import "strings"

// Entry is the result of looking up a single word. Field names follow the
// JSON shape used by the Youdao translation API.
type Entry struct {
	Query       string    `json:"query"`
	ErrorCode   string    `json:"errorCode,omitempty"` // "" or "0" on success
	Translation []string  `json:"translation,omitempty"`
	Basic       *Basic    `json:"basic,omitempty"`
	Web         []WebItem `json:"web,omitempty"`
}

// Basic holds the phonetics and short explanations of a word.
type Basic struct {
	Phonetic   string   `json:"phonetic,omitempty"`
	UKPhonetic string   `json:"uk-phonetic,omitempty"`
	USPhonetic string   `json:"us-phonetic,omitempty"`
	Explains   []string `json:"explains,omitempty"`
}

// WebItem is one web reference: a phrase and its translations.
type WebItem struct {
	Key   string   `json:"key"`
	Value []string `json:"value"`
}

// ErrNoResult is the error code set on entries for words with no result.
const ErrNoResult = "404"

// OK reports whether the entry carries a successful result.
func (e *Entry) OK() bool {
	return e.ErrorCode == "" || e.ErrorCode == "0"
}

// Missing returns the entry rendered for a word the dictionary does not know.
func Missing(word string) *Entry {
	return &Entry{Query: word, ErrorCode: ErrNoResult}
}

// NormalizeWord trims and lowercases a word for use as a lookup key.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
