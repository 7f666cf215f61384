// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntryAlreadyExists = errors.New("entry already exists")
	ErrCapacityExceeded   = errors.New("entry limit exceeded")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrNotFound           = errors.New("entry not found")
	ErrInvalidName        = errors.New("entry name cannot be empty")
	ErrNameLineBreak      = errors.New("entry name cannot contain a line break")
)

// Entry is a named survey item with its vote counter.
type Entry struct {
	Name  string
	Votes int64
}

// State is the ordered collection of entries.
// It does no locking; callers serialize access.
type State struct {
	entries    []Entry
	maxEntries int
}

// New creates a State with the given capacity, seeded with entries
// (typically loaded from storage). Seed entries must satisfy the same
// invariants AddEntry enforces.
func New(maxEntries int, entries []Entry) (*State, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("max entries must be positive, got %d", maxEntries)
	}
	if len(entries) > maxEntries {
		return nil, fmt.Errorf("%d entries loaded, max is %d: %w", len(entries), maxEntries, ErrCapacityExceeded)
	}

	s := &State{
		entries:    make([]Entry, 0, len(entries)),
		maxEntries: maxEntries,
	}
	for _, e := range entries {
		if err := CheckName(e.Name); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		if s.Contains(e.Name) {
			return nil, fmt.Errorf("duplicate entry %q: %w", e.Name, ErrEntryAlreadyExists)
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// AddEntry appends a new entry with zero votes and returns its index.
func (s *State) AddEntry(name string) (int, error) {
	if err := CheckName(name); err != nil {
		return 0, err
	}
	if s.Contains(name) {
		return 0, ErrEntryAlreadyExists
	}
	if s.Full() {
		return 0, ErrCapacityExceeded
	}

	s.entries = append(s.entries, Entry{Name: name})
	return len(s.entries) - 1, nil
}

// CheckName reports whether name can be an entry name. Names are sent
// inside single protocol lines, so they cannot contain CR or LF.
func CheckName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, "\r\n") {
		return ErrNameLineBreak
	}
	return nil
}

// UpVote increments the votes at index by one.
func (s *State) UpVote(index int) error {
	if !s.valid(index) {
		return ErrIndexOutOfRange
	}
	s.entries[index].Votes++
	return nil
}

// DownVote decrements the votes at index by one. There is no floor.
func (s *State) DownVote(index int) error {
	if !s.valid(index) {
		return ErrIndexOutOfRange
	}
	s.entries[index].Votes--
	return nil
}

// RemoveEntry deletes the entry at index; later entries shift down by one.
func (s *State) RemoveEntry(index int) error {
	if !s.valid(index) {
		return ErrIndexOutOfRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return nil
}

// IndexOf returns the index of the entry called name.
func (s *State) IndexOf(name string) (int, error) {
	for i, e := range s.entries {
		if e.Name == name {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Contains reports whether an entry called name exists (case-sensitive).
func (s *State) Contains(name string) bool {
	_, err := s.IndexOf(name)
	return err == nil
}

// Entry returns the entry at index.
func (s *State) Entry(index int) (Entry, error) {
	if !s.valid(index) {
		return Entry{}, ErrIndexOutOfRange
	}
	return s.entries[index], nil
}

// Entries returns a copy of all entries in index order.
func (s *State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *State) Len() int { return len(s.entries) }

func (s *State) MaxEntries() int { return s.maxEntries }

// Full reports whether no more entries can be added.
func (s *State) Full() bool { return len(s.entries) >= s.maxEntries }

func (s *State) valid(index int) bool {
	return index >= 0 && index < len(s.entries)
}
