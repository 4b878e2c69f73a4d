// Package fa implements Component A of the toolkit: a graph of states with
// labeled/epsilon transitions, simulation, NFA->DFA subset construction, and
// Hopcroft-flavored DFA minimization.
//
// States are identified by ids drawn from a single process-wide monotonic
// counter (langutil.NextID), so two automata built independently and later
// combined can never collide on a state id. Globally unique node ids trade a small amount of
// module-level mutable state for simplicity in every combinator that joins
// automata together.
package fa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// Epsilon is the distinguished input symbol meaning "no input consumed".
const Epsilon = ""

// Role is an opaque label attached to a state, primarily used to tag
// accepting states with which token definition (or other semantic role)
// they accept for. DFA minimization partitions on Role in addition to
// accept/non-accept status so that two accepting states with different
// roles are never merged.
type Role string

type transition struct {
	input  string // Epsilon for an epsilon transition
	target string
}

// State is one node of an FA.
type State struct {
	ID      string
	IsStart bool
	IsEnd   bool
	Role    Role

	transitions []transition
}

// Transitions returns a copy of the state's outgoing transitions as
// (input, target) pairs. Epsilon transitions carry input == Epsilon.
func (s *State) Transitions() [][2]string {
	out := make([][2]string, len(s.transitions))
	for i, t := range s.transitions {
		out[i] = [2]string{t.input, t.target}
	}
	return out
}

// FA is a finite automaton: a set of states plus an execution cursor
// (current) and the longest-accepting-prefix counter (maxMatch) used by the
// lexer's longest-match scan.
type FA struct {
	states map[string]*State
	start  string

	current      map[string]struct{}
	matchCounter int
	maxMatch     int
}

// New returns an empty FA with no states.
func New() *FA {
	return &FA{states: map[string]*State{}}
}

// AddState creates a fresh state with a globally unique id and returns it.
// At most one state may be the start state; calling AddState with
// isStart=true a second time replaces the prior start marker.
func (f *FA) AddState(isStart, isEnd bool, role Role) string {
	id := fmt.Sprintf("q%d", langutil.NextID())
	f.states[id] = &State{ID: id, IsStart: isStart, IsEnd: isEnd, Role: role}
	if isStart {
		if old, ok := f.states[f.start]; ok {
			old.IsStart = false
		}
		f.start = id
	}
	return id
}

// State returns the state with the given id, or nil if none exists.
func (f *FA) State(id string) *State {
	return f.states[id]
}

// States returns the ids of every state in the FA, in unspecified order.
func (f *FA) States() []string {
	ids := make([]string, 0, len(f.states))
	for id := range f.states {
		ids = append(ids, id)
	}
	return ids
}

// Start returns the id of the start state, or "" if none has been set.
func (f *FA) Start() string {
	return f.start
}

// SetStart marks id as the unique start state. id must already exist.
func (f *FA) SetStart(id string) {
	if old, ok := f.states[f.start]; ok {
		old.IsStart = false
	}
	f.states[id].IsStart = true
	f.start = id
}

// AddTransition adds an edge from -> to labeled input (Epsilon for an
// epsilon transition). Idempotent: adding the same (from, input, to) triple
// twice has no additional effect, since transitions are semantically a
// multiset of distinct labeled edges.
func (f *FA) AddTransition(from, input, to string) {
	s := f.states[from]
	for _, t := range s.transitions {
		if t.input == input && t.target == to {
			return
		}
	}
	s.transitions = append(s.transitions, transition{input: input, target: to})
}

// SetAccepting sets whether id is an accepting state, and (if accepting)
// what role it accepts as.
func (f *FA) SetAccepting(id string, accepting bool, role Role) {
	s := f.states[id]
	s.IsEnd = accepting
	if accepting {
		s.Role = role
	}
}

// Validate checks that the FA is well-formed: every transition target
// must be a known state, and a start state must be set if the FA has any
// states at all.
func (f *FA) Validate() error {
	if len(f.states) > 0 {
		if _, ok := f.states[f.start]; !ok {
			return langerr.InvalidInput("FA has no valid start state")
		}
	}
	for id, s := range f.states {
		for _, t := range s.transitions {
			if _, ok := f.states[t.target]; !ok {
				return langerr.InvalidInput("state %s has a transition to unknown state %s", id, t.target)
			}
		}
	}
	return nil
}

// IsDFACompatible returns whether s has no epsilon transitions and no two
// transitions sharing the same input symbol.
func (f *FA) IsDFACompatible(id string) bool {
	s := f.states[id]
	seen := map[string]bool{}
	for _, t := range s.transitions {
		if t.input == Epsilon {
			return false
		}
		if seen[t.input] {
			return false
		}
		seen[t.input] = true
	}
	return true
}

// IsDFA returns whether every state of f is DFA-compatible.
func (f *FA) IsDFA() bool {
	for id := range f.states {
		if !f.IsDFACompatible(id) {
			return false
		}
	}
	return true
}

// EpsilonClosure returns the least fixpoint of set under "add every
// epsilon-reachable state", computed via a worklist so that it terminates
// after discovering no new states.
func (f *FA) EpsilonClosure(set langutil.Set[string]) langutil.Set[string] {
	closure := set.Copy()
	worklist := set.Elements()

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		s := f.states[id]
		for _, t := range s.transitions {
			if t.input == Epsilon && !closure.Has(t.target) {
				closure.Add(t.target)
				worklist = append(worklist, t.target)
			}
		}
	}
	return closure
}

// Reset returns the FA's execution cursor to the epsilon-closure of its
// start state and clears the match counters.
func (f *FA) Reset() {
	f.current = f.EpsilonClosure(langutil.NewSet(f.start))
	f.matchCounter = 0
	f.maxMatch = 0
	f.updateMaxMatch()
}

func (f *FA) updateMaxMatch() {
	for id := range f.current {
		if f.states[id].IsEnd {
			f.maxMatch = f.matchCounter
			return
		}
	}
}

// MoveNext consumes one input symbol c: collect
// every target reachable from the current state set on c, take the
// epsilon-closure, and install it as the new current set. Returns false,
// leaving f.current empty, if the automaton is stuck, i.e. no state in the
// current set has a transition on c.
func (f *FA) MoveNext(c string) bool {
	targets := langutil.NewSet[string]()
	for id := range f.current {
		s := f.states[id]
		for _, t := range s.transitions {
			if t.input == c {
				targets.Add(t.target)
			}
		}
	}
	if targets.Empty() {
		f.current = langutil.NewSet[string]()
		return false
	}

	f.current = f.EpsilonClosure(targets)
	f.matchCounter++
	f.updateMaxMatch()
	return true
}

// MaxMatch returns the length of the longest accepting prefix seen since the
// last Reset.
func (f *FA) MaxMatch() int {
	return f.maxMatch
}

// Current returns the ids of the states the FA currently occupies.
func (f *FA) Current() []string {
	out := make([]string, 0, len(f.current))
	for id := range f.current {
		out = append(out, id)
	}
	return out
}

// Test resets the FA, feeds it every symbol of input in order, and returns
// whether it ends in an accepting state. A stuck automaton simply fails to
// accept; it does not raise an error.
func (f *FA) Test(input []string) bool {
	f.Reset()
	for _, c := range input {
		if !f.MoveNext(c) {
			return false
		}
	}
	for id := range f.current {
		if f.states[id].IsEnd {
			return true
		}
	}
	return false
}

// String renders the FA as a sorted, line-per-transition description
// suitable for diagnostics and for round-trip comparison in tests.
func (f *FA) String() string {
	var sb strings.Builder
	ids := f.States()
	sort.Strings(ids)

	for _, id := range ids {
		s := f.states[id]
		marks := ""
		if s.IsStart {
			marks += "S"
		}
		if s.IsEnd {
			marks += "E"
		}
		fmt.Fprintf(&sb, "%s[%s]", id, marks)
		if s.Role != "" {
			fmt.Fprintf(&sb, "(%s)", s.Role)
		}
		sb.WriteRune('\n')
		for _, t := range s.transitions {
			label := t.input
			if label == Epsilon {
				label = "ε"
			}
			fmt.Fprintf(&sb, "  -%s-> %s\n", label, t.target)
		}
	}
	return sb.String()
}
