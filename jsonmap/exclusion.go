package jsonmap

import "mapping-builder/member"

// ExclusionSet holds the member identities permanently forbidden from the
// mapping table for a builder's lifetime.
type ExclusionSet map[member.Identity]struct{}

// Has reports whether id is excluded.
func (s ExclusionSet) Has(id member.Identity) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of excluded members.
func (s ExclusionSet) Len() int { return len(s) }

// Clone returns an independent copy. Identities are immutable values and are
// shared safely.
func (s ExclusionSet) Clone() ExclusionSet {
	c := make(ExclusionSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}

	return c
}
