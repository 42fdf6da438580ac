package completion

import (
	"encoding/json"
	"sort"
)

// Set is an immutable set of completed item ids. Mutating helpers return a copy.
type Set struct {
	ids map[string]struct{}
}

// NewSet builds a set from ids, ignoring duplicates
func NewSet(ids []string) Set {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return Set{ids: m}
}

// Has reports membership
func (s Set) Has(itemID string) bool {
	_, ok := s.ids[itemID]
	return ok
}

// Len returns the number of completed items
func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in sorted order
func (s Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same members
func (s Set) Equal(other Set) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// With returns s with membership of itemID set to completed
func (s Set) With(itemID string, completed bool) Set {
	if s.Has(itemID) == completed {
		return s
	}
	m := make(map[string]struct{}, len(s.ids)+1)
	for id := range s.ids {
		m[id] = struct{}{}
	}
	if completed {
		m[itemID] = struct{}{}
	} else {
		delete(m, itemID)
	}
	return Set{ids: m}
}

// MarshalJSON encodes the set as a sorted array
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}
