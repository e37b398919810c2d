// Package memory persists per-word quiz performance across sessions.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"unicode/utf8"
)

// DefaultFile is the store location relative to the working directory.
const DefaultFile = ".quiz_memory.json"

// Record tracks how often a word was asked and answered correctly. The
// meaning is remembered so past misses can be quizzed without the
// original vocabulary file.
type Record struct {
	Asked   int    `json:"asked"`
	Correct int    `json:"correct"`
	Meaning string `json:"meaning,omitempty"`
}

// Store holds performance records keyed by Selik word. It is an
// explicit object with a load/mutate/save lifecycle; nothing is shared
// between processes and the last writer wins. Access is mutex-guarded:
// the interrupt handler saves the store while a session is still
// recording answers.
type Store struct {
	path string

	mu      sync.Mutex
	records map[string]*Record
}

// Open returns a store backed by the file at path. Nothing is read
// until Load is called.
func Open(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]*Record),
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing file leaves the store empty
// and is not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading memory file: %w", err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("memory file %q is not valid UTF-8", s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := json.Unmarshal(data, &s.records); err != nil {
		return fmt.Errorf("parsing memory file: %w", err)
	}
	return nil
}

// Save writes all records to the backing file as indented JSON.
func (s *Store) Save() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.records, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding memory: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing memory file: %w", err)
	}
	return nil
}

// RecordAnswer notes the outcome of one answered prompt, creating the
// word's record on first sight with the given meaning. This is the
// only mutation used while a session runs, so a concurrent Save always
// sees a consistent record.
func (s *Store) RecordAnswer(word, meaning string, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.touch(word, meaning)
	rec.Asked++
	if correct {
		rec.Correct++
	}
}

// Get returns the record for word, or nil when the word was never
// asked. The returned record is live; mutations stick.
func (s *Store) Get(word string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[word]
}

// Touch returns the record for word, creating it with the given
// meaning on first sight.
func (s *Store) Touch(word, meaning string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touch(word, meaning)
}

func (s *Store) touch(word, meaning string) *Record {
	rec, ok := s.records[word]
	if !ok {
		rec = &Record{Meaning: meaning}
		s.records[word] = rec
	}
	return rec
}

// Words returns all recorded words in lexical order.
func (s *Store) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := make([]string, 0, len(s.records))
	for w := range s.records {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of recorded words.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
