// Package langutil holds small generic collection types shared across the
// toolkit's components: sets, stacks, and sparse two-key matrices. None of
// this is specific to any one component; it is the connective tissue that
// automaton, grammar, lexer and parser code all build on.
package langutil

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a simple unordered collection of comparable elements. It is used
// anywhere a component needs "the set of X" without caring about insertion
// order: used-symbols, FIRST/FOLLOW/SELECT sets, reachable state ids, and so
// on.
type Set[E comparable] map[E]struct{}

// NewSet returns a Set containing the given elements.
func NewSet[E comparable](elements ...E) Set[E] {
	s := make(Set[E], len(elements))
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add adds element to the set. Has no effect if already present.
func (s Set[E]) Add(element E) {
	s[element] = struct{}{}
}

// AddAll adds every element of o to s.
func (s Set[E]) AddAll(o Set[E]) {
	for e := range o {
		s.Add(e)
	}
}

// Remove removes element from the set, if present.
func (s Set[E]) Remove(element E) {
	delete(s, element)
}

// Has returns whether element is in the set.
func (s Set[E]) Has(element E) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	return len(s)
}

// Empty returns whether the set has no elements.
func (s Set[E]) Empty() bool {
	return len(s) == 0
}

// Copy returns a shallow copy of the set.
func (s Set[E]) Copy() Set[E] {
	newS := make(Set[E], len(s))
	newS.AddAll(s)
	return newS
}

// Union returns a new set containing every element of s or o.
func (s Set[E]) Union(o Set[E]) Set[E] {
	newS := s.Copy()
	newS.AddAll(o)
	return newS
}

// Intersection returns a new set containing every element in both s and o.
func (s Set[E]) Intersection(o Set[E]) Set[E] {
	newS := make(Set[E])
	for e := range s {
		if o.Has(e) {
			newS.Add(e)
		}
	}
	return newS
}

// Difference returns a new set containing elements in s but not in o.
func (s Set[E]) Difference(o Set[E]) Set[E] {
	newS := s.Copy()
	for e := range o {
		newS.Remove(e)
	}
	return newS
}

// DisjointWith returns whether s and o share no elements.
func (s Set[E]) DisjointWith(o Set[E]) bool {
	for e := range s {
		if o.Has(e) {
			return false
		}
	}
	return true
}

// Equal returns whether s and o contain exactly the same elements.
func (s Set[E]) Equal(o Set[E]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// Elements returns the members of s in unspecified order.
func (s Set[E]) Elements() []E {
	elems := make([]E, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	return elems
}

// Any returns whether any element of s satisfies predicate.
func (s Set[E]) Any(predicate func(E) bool) bool {
	for e := range s {
		if predicate(e) {
			return true
		}
	}
	return false
}

// StringOrdered renders the set's elements sorted by their %v form, which is
// useful anywhere two sets must compare equal by their printed form (tests,
// diagnostics) regardless of map iteration order.
func (s Set[E]) StringOrdered() string {
	conv := make([]string, 0, len(s))
	for e := range s {
		conv = append(conv, fmt.Sprintf("%v", e))
	}
	sort.Strings(conv)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(conv, ", "))
	sb.WriteRune('}')
	return sb.String()
}

func (s Set[E]) String() string {
	return s.StringOrdered()
}

// OrderedKeys returns the keys of m, sorted. Used wherever a deterministic
// iteration order over a map is needed for reproducible output (table
// rendering, Graphviz emission) without requiring the map's value type to be
// orderable itself.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EqualSlices returns whether two slices have the same elements in the same
// order.
func EqualSlices[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InSlice returns whether target appears anywhere in sl.
func InSlice[E comparable](target E, sl []E) bool {
	for _, e := range sl {
		if e == target {
			return true
		}
	}
	return false
}
