package fa

import (
	"sort"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// InputSymbols returns every non-epsilon input symbol appearing on any
// transition in the FA.
func (f *FA) InputSymbols() []string {
	seen := langutil.NewSet[string]()
	for _, s := range f.states {
		for _, t := range s.transitions {
			if t.input != Epsilon {
				seen.Add(t.input)
			}
		}
	}
	syms := seen.Elements()
	sort.Strings(syms)
	return syms
}

// move returns the set of states reachable from any member of set on input
// symbol a (the "MOVE" function of the dragon book's subset construction).
func (f *FA) move(set langutil.Set[string], a string) langutil.Set[string] {
	out := langutil.NewSet[string]()
	for id := range set {
		for _, t := range f.states[id].transitions {
			if t.input == a {
				out.Add(t.target)
			}
		}
	}
	return out
}

// subsetKey renders a state-id set as a canonical string so it can be used
// as a worklist/seen-set dedup key.
func subsetKey(set langutil.Set[string]) string {
	elems := set.Elements()
	sort.Strings(elems)
	return strings.Join(elems, ",")
}

// ToDFA performs subset construction (dragon book Algorithm 3.20): the start
// state of the result is the epsilon-closure of f's start state, and new DFA
// states are discovered by a worklist over reachable subsets of f's states,
// one input symbol at a time. Each discovered subset becomes one DFA state,
// accepting iff any member of the subset is accepting; when more than one
// member is accepting with different roles, the lowest-sorted role wins (the
// lexer never calls ToDFA on an FA built from more than one token
// definition, so in practice this tie only matters for diagnostic labeling).
func (f *FA) ToDFA() *FA {
	dfa := New()

	startSet := f.EpsilonClosure(langutil.NewSet(f.start))
	startKey := subsetKey(startSet)

	subsetToState := map[string]string{}
	subsetToState[startKey] = dfa.AddState(true, false, "")

	worklist := []langutil.Set[string]{startSet}

	setAccepting := func(dfaID string, set langutil.Set[string]) {
		var role Role
		accepting := false
		roles := []string{}
		for id := range set {
			if f.states[id].IsEnd {
				accepting = true
				roles = append(roles, string(f.states[id].Role))
			}
		}
		if accepting {
			sort.Strings(roles)
			role = Role(roles[0])
		}
		dfa.SetAccepting(dfaID, accepting, role)
	}
	setAccepting(subsetToState[startKey], startSet)

	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]
		fromKey := subsetKey(set)
		fromID := subsetToState[fromKey]

		for _, a := range f.InputSymbols() {
			moved := f.move(set, a)
			if moved.Empty() {
				continue
			}
			closure := f.EpsilonClosure(moved)
			key := subsetKey(closure)

			toID, ok := subsetToState[key]
			if !ok {
				toID = dfa.AddState(false, false, "")
				subsetToState[key] = toID
				setAccepting(toID, closure)
				worklist = append(worklist, closure)
			}

			dfa.AddTransition(fromID, a, toID)
		}
	}

	return dfa
}
