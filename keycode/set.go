// SPDX-License-Identifier: MIT

package keycode

import "sort"

// Set is the keycode set of a single region.
type Set map[string]struct{}

// NewSet builds a Set from the given identifiers (duplicates collapse).
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Len returns |s|.
func (s Set) Len() int { return len(s) }

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id.
func (s Set) Add(id string) { s[id] = struct{}{} }

// IntersectionSize returns |s ∩ o| iterating over the smaller set.
// Complexity: O(min(|s|,|o|)).
func (s Set) IntersectionSize(o Set) int {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}

	return n
}

// UnionSize returns |s ∪ o|.
func (s Set) UnionSize(o Set) int {
	return len(s) + len(o) - s.IntersectionSize(o)
}

// Intersect returns a new Set holding s ∩ o.
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Universe returns the sorted union of all region sets.
// Complexity: O(Σ|s| + U log U).
func Universe(sets []Set) []string {
	all := make(Set)
	for _, s := range sets {
		for id := range s {
			all[id] = struct{}{}
		}
	}

	return all.Sorted()
}

// NumberOfContrasts returns the size of the universe, the default total
// for significance testing.
func NumberOfContrasts(sets []Set) int {
	return len(Universe(sets))
}

// DomainFilter restricts every region to the keycodes of one behavioral
// domain. The input sets are not modified.
func DomainFilter(sets []Set, domainIDs []string) []Set {
	domain := NewSet(domainIDs...)
	out := make([]Set, len(sets))
	for i, s := range sets {
		out[i] = s.Intersect(domain)
	}

	return out
}

// RegionLabels derives display labels from raw region names by dropping the
// last trim characters (e.g. a ".csv\n" suffix). Names not longer than trim
// are kept whole.
func RegionLabels(names []string, trim int) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		if trim > 0 && len(name) > trim {
			name = name[:len(name)-trim]
		}
		labels[i] = name
	}

	return labels
}
