package fa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// Minimize performs Hopcroft-flavored partition refinement on a DFA.
//
// The initial partition groups states not just by accept/non-accept status
// but by (accept, role): without it, an `int` accepting state and a
// `keyword:if` accepting state with identical outgoing transition signatures
// would be merged, silently corrupting longest-match-with-priority
// tokenization downstream. Two states are then split out of the
// same block whenever they transition, on some input symbol, to states in
// different blocks, or whenever the set of input symbols they transition on
// differs (their "transition signature"). Refinement repeats until no block
// splits further.
//
// Unreachable states and trap states (states with no path to any accepting
// state) are dropped in a post-pass, by forward reachability from the start
// state and backward reachability from accepting states.
//
// Minimize returns NotADFA if f is not already a DFA (it has epsilon
// transitions, or some state has two transitions on the same input symbol).
func (f *FA) Minimize() (*FA, error) {
	if !f.IsDFA() {
		return nil, langerr.NotADFA("automaton has epsilon transitions or non-deterministic transitions")
	}

	reachable := f.forwardReachable()
	canReachAccept := f.backwardReachableFromAccepting()

	live := langutil.NewSet[string]()
	for id := range reachable {
		if canReachAccept.Has(id) {
			live.Add(id)
		}
	}

	partition := f.initialPartition(live)

	for {
		next, split := f.refine(partition, live)
		if !split {
			break
		}
		partition = next
	}

	return f.buildFromPartition(partition, live), nil
}

func (f *FA) forwardReachable() langutil.Set[string] {
	reached := langutil.NewSet[string](f.start)
	worklist := []string{f.start}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range f.states[id].transitions {
			if !reached.Has(t.target) {
				reached.Add(t.target)
				worklist = append(worklist, t.target)
			}
		}
	}
	return reached
}

func (f *FA) backwardReachableFromAccepting() langutil.Set[string] {
	preds := map[string][]string{}
	for id, s := range f.states {
		for _, t := range s.transitions {
			preds[t.target] = append(preds[t.target], id)
		}
	}

	reached := langutil.NewSet[string]()
	var worklist []string
	for id, s := range f.states {
		if s.IsEnd {
			reached.Add(id)
			worklist = append(worklist, id)
		}
	}
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, p := range preds[id] {
			if !reached.Has(p) {
				reached.Add(p)
				worklist = append(worklist, p)
			}
		}
	}
	return reached
}

type block struct {
	key   string // (accepting, role) label shared by every member
	ids   []string
}

func (f *FA) initialPartition(live langutil.Set[string]) []block {
	byKey := map[string][]string{}
	for id := range live {
		s := f.states[id]
		key := "n"
		if s.IsEnd {
			key = "a:" + string(s.Role)
		}
		byKey[key] = append(byKey[key], id)
	}

	blocks := make([]block, 0, len(byKey))
	for key, ids := range byKey {
		sort.Strings(ids)
		blocks = append(blocks, block{key: key, ids: ids})
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].key < blocks[j].key })
	return blocks
}

// refine splits every block in partition whenever two of its members
// disagree on which block they transition to for some input symbol, or on
// which symbols they have transitions for at all. Returns the refined
// partition and whether any split occurred.
func (f *FA) refine(partition []block, live langutil.Set[string]) ([]block, bool) {
	blockOf := map[string]int{}
	for i, b := range partition {
		for _, id := range b.ids {
			blockOf[id] = i
		}
	}

	signature := func(id string) string {
		s := f.states[id]
		syms := make([]string, 0, len(s.transitions))
		for _, t := range s.transitions {
			if !live.Has(t.target) {
				continue
			}
			syms = append(syms, t.input+"->"+strconv.Itoa(blockOf[t.target]))
		}
		sort.Strings(syms)
		return strings.Join(syms, "|")
	}

	var next []block
	split := false
	for _, b := range partition {
		groups := map[string][]string{}
		for _, id := range b.ids {
			sig := signature(id)
			groups[sig] = append(groups[sig], id)
		}
		if len(groups) > 1 {
			split = true
		}
		for sig, ids := range groups {
			sort.Strings(ids)
			next = append(next, block{key: b.key + "#" + sig, ids: ids})
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i].ids[0] < next[j].ids[0] })
	return next, split
}

func (f *FA) buildFromPartition(partition []block, live langutil.Set[string]) *FA {
	out := New()

	blockOf := map[string]int{}
	for i, b := range partition {
		for _, id := range b.ids {
			blockOf[id] = i
		}
	}

	blockState := make([]string, len(partition))
	for i, b := range partition {
		rep := f.states[b.ids[0]]
		isStart := false
		for _, id := range b.ids {
			if id == f.start {
				isStart = true
			}
		}
		blockState[i] = out.AddState(isStart, rep.IsEnd, rep.Role)
	}

	for i, b := range partition {
		rep := f.states[b.ids[0]]
		for _, t := range rep.transitions {
			if !live.Has(t.target) {
				continue
			}
			out.AddTransition(blockState[i], t.input, blockState[blockOf[t.target]])
		}
	}

	return out
}
