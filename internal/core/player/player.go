package player

import (
	"slices"
)

// ID identifies a seat at the table.
type ID int

// Set is an unordered collection of player IDs without duplicates.
type Set map[ID]struct{}

// NewSet builds a set from the given IDs.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	s.Add(ids...)
	return s
}

func (s Set) Add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Remove deletes the given IDs. Absent IDs are ignored.
func (s Set) Remove(ids ...ID) {
	for _, id := range ids {
		delete(s, id)
	}
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
