// Package pattern manages text-expansion shortcuts: short strings that
// expand to longer text when they appear at the start of a new todo item.
package pattern

import (
	"sort"
	"strings"
)

// Pattern pairs a shortcut with the text it expands to. The expansion
// may be any string, including empty.
type Pattern struct {
	Shortcut  string
	Expansion string
}

// Storage persists the shortcut→expansion mapping.
type Storage interface {
	Load() (map[string]string, error)
	Save(map[string]string) error
}

// Store holds the registered patterns. Shortcuts are case-sensitive and
// compared byte-exact, so non-ASCII scripts work as keys. Every
// successful mutation is persisted before it returns.
type Store struct {
	storage  Storage
	patterns map[string]string
}

// NewStore loads the patterns from storage.
func NewStore(storage Storage) (*Store, error) {
	m, err := storage.Load()
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]string{}
	}
	return &Store{storage: storage, patterns: m}, nil
}

// Add registers a pattern, overwriting any previous expansion for the
// same shortcut.
func (s *Store) Add(shortcut, expansion string) error {
	if shortcut == "" {
		return &ValidationError{Msg: "shortcut must not be empty"}
	}
	s.patterns[shortcut] = expansion
	return s.storage.Save(s.patterns)
}

// Remove deletes a pattern by its shortcut.
func (s *Store) Remove(shortcut string) error {
	if _, ok := s.patterns[shortcut]; !ok {
		return &NotFoundError{Shortcut: shortcut}
	}
	delete(s.patterns, shortcut)
	return s.storage.Save(s.patterns)
}

// Get returns the expansion for an exact shortcut.
func (s *Store) Get(shortcut string) (string, bool) {
	expansion, ok := s.patterns[shortcut]
	return expansion, ok
}

// Len reports the number of registered patterns.
func (s *Store) Len() int { return len(s.patterns) }

// List returns all patterns sorted by shortcut.
func (s *Store) List() []Pattern {
	out := make([]Pattern, 0, len(s.patterns))
	for shortcut, expansion := range s.patterns {
		out = append(out, Pattern{Shortcut: shortcut, Expansion: expansion})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shortcut < out[j].Shortcut })
	return out
}

// Matching returns the patterns whose shortcut starts with partial,
// sorted by shortcut.
func (s *Store) Matching(partial string) []Pattern {
	var out []Pattern
	for shortcut, expansion := range s.patterns {
		if strings.HasPrefix(shortcut, partial) {
			out = append(out, Pattern{Shortcut: shortcut, Expansion: expansion})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shortcut < out[j].Shortcut })
	return out
}

// Expand replaces the longest shortcut that is a prefix of text with its
// expansion; the rest of text, whitespace included, is kept verbatim.
// The bool reports whether an expansion happened.
//
// A linear scan is enough for the pattern counts this tool sees. The
// result never depends on map iteration order: only a strictly longer
// shortcut replaces the current best, and two distinct shortcuts of
// equal length cannot both be prefixes of the same text.
func (s *Store) Expand(text string) (string, bool) {
	best := ""
	for shortcut := range s.patterns {
		if len(shortcut) > len(best) && strings.HasPrefix(text, shortcut) {
			best = shortcut
		}
	}
	if best == "" {
		return text, false
	}
	return s.patterns[best] + text[len(best):], true
}
