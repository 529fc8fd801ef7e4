package twitter

import (
	"slices"
	"strings"
)

// foldUsername returns the canonical key for a username. Twitter usernames
// are case-insensitive, so "ernie" and "ERNie" fold to the same key.
func foldUsername(name string) string {
	return strings.ToLower(name)
}

// EqualsUsername reports whether two usernames are the same user.
func EqualsUsername(a, b string) bool {
	return foldUsername(a) == foldUsername(b)
}

// ContainsUsername reports whether names holds a username equal to name.
func ContainsUsername(names []string, name string) bool {
	return slices.ContainsFunc(names, func(n string) bool {
		return EqualsUsername(n, name)
	})
}

// ContainsAllUsernames reports whether every username in sub has a
// case-insensitive match in names.
func ContainsAllUsernames(names, sub []string) bool {
	return NewUsernameSet(names...).ContainsAll(NewUsernameSet(sub...))
}

// Lookup returns the value stored under any key of m equal to name.
// Callers holding maps keyed by raw spellings use it instead of m[name].
func Lookup[V any](m map[string]V, name string) (V, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if EqualsUsername(k, name) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// UsernameSet is a case-insensitive set of usernames. Keys are folded
// usernames; values keep the first spelling added. Like any map, a nil set
// can be read but Add panics on it; build sets with NewUsernameSet or make.
type UsernameSet map[string]string

// NewUsernameSet returns a set holding names.
func NewUsernameSet(names ...string) UsernameSet {
	s := make(UsernameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name, returning false if an equal username was already present.
func (s UsernameSet) Add(name string) bool {
	k := foldUsername(name)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = name
	return true
}

// Remove deletes any username equal to name.
func (s UsernameSet) Remove(name string) {
	delete(s, foldUsername(name))
}

// Contains reports whether the set holds a username equal to name.
func (s UsernameSet) Contains(name string) bool {
	_, ok := s[foldUsername(name)]
	return ok
}

// ContainsAll reports whether every member of other is in s.
func (s UsernameSet) ContainsAll(other UsernameSet) bool {
	for k := range other {
		if _, ok := s[k]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of distinct usernames.
func (s UsernameSet) Len() int { return len(s) }

// Names returns the stored spellings in case-insensitive order.
func (s UsernameSet) Names() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = s[k]
	}
	return names
}

// Equal reports whether both sets hold the same usernames, ignoring case.
func (s UsernameSet) Equal(other UsernameSet) bool {
	return len(s) == len(other) && s.ContainsAll(other)
}

// Clone returns an independent copy of s.
func (s UsernameSet) Clone() UsernameSet {
	c := make(UsernameSet, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
