package lr1

import (
	"sort"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
)

// coreKey is an item's key ignoring lookahead, used to find LR(1) states
// sharing the same core (dragon book §4.7's LALR(1)-by-merging approach:
// build the full canonical LR(1) collection, then merge any two states
// whose cores coincide, unioning their lookaheads).
func coreKey(it Item) string {
	var sb strings.Builder
	sb.WriteString(it.NonTerminal)
	sb.WriteString("->")
	for i, s := range it.Body {
		if i == it.Dot {
			sb.WriteString(".")
		}
		sb.WriteString(s)
		sb.WriteString(" ")
	}
	if it.Dot == len(it.Body) {
		sb.WriteString(".")
	}
	return sb.String()
}

func setCoreKey(s *ItemSet) string {
	cores := map[string]bool{}
	for _, it := range s.Items() {
		cores[coreKey(it)] = true
	}
	keys := make([]string, 0, len(cores))
	for k := range cores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// mergeLALR merges the states of a canonical LR(1) collection that share a
// core, returning the merged collection and the old-state -> new-state
// index map.
func mergeLALR(col *Collection) (*Collection, []int) {
	groupOf := map[string]int{}
	var mergedStates []*ItemSet
	oldToNew := make([]int, len(col.States))

	for i, state := range col.States {
		key := setCoreKey(state)
		g, ok := groupOf[key]
		if !ok {
			g = len(mergedStates)
			groupOf[key] = g
			mergedStates = append(mergedStates, newItemSet())
		}
		oldToNew[i] = g
		for _, it := range state.Items() {
			mergedStates[g].Add(it)
		}
	}

	mergedTransitions := make([]map[string]int, len(mergedStates))
	for i := range mergedTransitions {
		mergedTransitions[i] = map[string]int{}
	}
	for oldState, trans := range col.Transitions {
		from := oldToNew[oldState]
		for sym, oldTarget := range trans {
			mergedTransitions[from][sym] = oldToNew[oldTarget]
		}
	}

	return &Collection{States: mergedStates, Transitions: mergedTransitions}, oldToNew
}

// BuildLALR1Table constructs an LALR(1) table by building the full
// canonical LR(1) collection and merging same-core states, trading the
// (rare) loss of some canonical-LR(1) precision for a much smaller table.
// Conflict handling matches BuildTable.
func BuildLALR1Table(g *grammar.Grammar, allowConflict bool) (*Table, error) {
	aug := Augment(g)
	col, err := Build(aug)
	if err != nil {
		return nil, err
	}
	merged, _ := mergeLALR(col)
	return buildFromCollection(aug, merged, allowConflict)
}
