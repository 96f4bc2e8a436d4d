package util

import (
	"sort"
	"strings"
)

// StringSet is a map[string]bool used as a set of strings.
type StringSet map[string]bool

// NewStringSet creates a new StringSet with the keys of every given map added
// to it.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Empty() bool {
	return s.Len() == 0
}

// Elements returns the items in the set, alphabetized.
func (s StringSet) Elements() []string {
	return OrderedKeys(s)
}

// StringOrdered shows the contents of the set. Items are guaranteed to be
// alphabetized.
func (s StringSet) StringOrdered() string {
	return "{" + strings.Join(s.Elements(), ", ") + "}"
}

func (s StringSet) String() string {
	return s.StringOrdered()
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
