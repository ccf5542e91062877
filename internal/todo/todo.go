// Package todo manages the ordered todo list. Items are addressed by
// their 1-based position, not a stable id: positions shift when an
// earlier item is removed.
package todo

import (
	"strings"
	"time"

	"todopat/internal/model"
)

// Filter selects which items Entries returns.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter validates a filter name coming from the CLI.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	}
	return "", &ValidationError{Msg: "filter must be one of: all, pending, completed"}
}

// Storage persists the ordered item collection.
type Storage interface {
	Load() ([]model.Item, error)
	Save([]model.Item) error
}

// Expander rewrites new item text before it is stored. The bool reports
// whether a rewrite happened.
type Expander interface {
	Expand(text string) (string, bool)
}

// ExpanderFunc adapts a plain function to the Expander interface.
type ExpanderFunc func(string) (string, bool)

func (f ExpanderFunc) Expand(text string) (string, bool) { return f(text) }

// Entry pairs an item with its 1-based position in the full sequence.
// The position is valid input for Complete, Uncomplete and Remove until
// the next mutation, whatever filter produced the entry.
type Entry struct {
	Index int
	Item  model.Item
}

// Store holds the ordered todo list. Operations validate before they
// mutate, and every successful mutation is persisted before it returns.
type Store struct {
	storage  Storage
	expander Expander
	items    []model.Item
}

// NewStore loads the list from storage. expander may be nil, in which
// case Add stores its input unchanged.
func NewStore(storage Storage, expander Expander) (*Store, error) {
	items, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{storage: storage, expander: expander, items: items}, nil
}

// Add appends a new pending item. The text is run through the expander
// first; the returned item carries the stored (possibly expanded) text,
// and the bool reports whether expansion occurred.
func (s *Store) Add(text string) (model.Item, bool, error) {
	if strings.TrimSpace(text) == "" {
		return model.Item{}, false, &ValidationError{Msg: "item text must not be empty"}
	}
	expanded := false
	if s.expander != nil {
		text, expanded = s.expander.Expand(text)
	}
	now := time.Now()
	item := model.Item{Text: text, CreatedAt: &now}
	s.items = append(s.items, item)
	if err := s.storage.Save(s.items); err != nil {
		return model.Item{}, false, err
	}
	return item, expanded, nil
}

// Remove deletes the item at the given 1-based index and returns it.
// Later items shift down one position.
func (s *Store) Remove(index int) (model.Item, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Item{}, err
	}
	i := index - 1
	item := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	if err := s.storage.Save(s.items); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// Complete marks the item at the given 1-based index as done.
// Completing an already-done item is a no-op success.
func (s *Store) Complete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	item := &s.items[index-1]
	if !item.Completed {
		item.Completed = true
		now := time.Now()
		item.CompletedAt = &now
	}
	return s.storage.Save(s.items)
}

// Uncomplete marks the item at the given 1-based index as pending again.
func (s *Store) Uncomplete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	item := &s.items[index-1]
	item.Completed = false
	item.CompletedAt = nil
	return s.storage.Save(s.items)
}

// Clear removes every completed item, keeps the rest in order, and
// returns how many were removed.
func (s *Store) Clear() (int, error) {
	kept := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if !item.Completed {
			kept = append(kept, item)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	if err := s.storage.Save(s.items); err != nil {
		return 0, err
	}
	return removed, nil
}

// Entries returns the items matching filter, in stored order. Each
// index is the item's position in the full sequence, so the numbers
// shown by `list` line up with what the index commands expect.
func (s *Store) Entries(filter Filter) []Entry {
	out := make([]Entry, 0, len(s.items))
	for i, item := range s.items {
		switch filter {
		case FilterPending:
			if item.Completed {
				continue
			}
		case FilterCompleted:
			if !item.Completed {
				continue
			}
		}
		out = append(out, Entry{Index: i + 1, Item: item})
	}
	return out
}

// Items returns a copy of the full sequence.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// ReplaceAll swaps in a new sequence and persists it. The interactive
// mode uses this to write back its final state on quit.
func (s *Store) ReplaceAll(items []model.Item) error {
	s.items = items
	return s.storage.Save(s.items)
}

// Len reports the number of items, completed or not.
func (s *Store) Len() int { return len(s.items) }

// Stats reports the completed and pending counts.
func (s *Store) Stats() (done, pending int) {
	for _, item := range s.items {
		if item.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) checkIndex(index int) error {
	if index < 1 || index > len(s.items) {
		return &OutOfRangeError{Index: index, Len: len(s.items)}
	}
	return nil
}
