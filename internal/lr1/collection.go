package lr1

import (
	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
)

// Collection is the canonical LR(1) item-set automaton: one state per
// distinct item set, plus the GOTO transitions between them.
type Collection struct {
	States      []*ItemSet
	Transitions []map[string]int // Transitions[state][symbol] = target state
}

// Build constructs the canonical collection of LR(1) item sets for the
// augmented grammar aug (see Augment), per dragon book Algorithm 4.43: seed
// state 0 with the closure of [S' -> . S, $], then repeatedly compute
// GOTO(state, X) for every symbol X that appears after a dot in some
// existing state, adding new states and transitions until a fixed point.
func Build(aug *grammar.Grammar) (*Collection, error) {
	startRule, _ := aug.Rule(aug.StartSymbol())
	seed := newItemSet()
	seed.Add(Item{NonTerminal: aug.StartSymbol(), Body: []string(startRule.Productions[0]), Dot: 0, Lookahead: grammar.EndOfInput})

	start, err := Closure(aug, seed)
	if err != nil {
		return nil, err
	}

	col := &Collection{States: []*ItemSet{start}, Transitions: []map[string]int{{}}}
	indexByKey := map[string]int{start.Key(): 0}

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		for _, sym := range symbolsAfterDot(col.States[i]) {
			target, err := Goto(aug, col.States[i], sym)
			if err != nil {
				return nil, err
			}
			if len(target.Items()) == 0 {
				continue
			}

			key := target.Key()
			idx, exists := indexByKey[key]
			if !exists {
				idx = len(col.States)
				indexByKey[key] = idx
				col.States = append(col.States, target)
				col.Transitions = append(col.Transitions, map[string]int{})
				worklist = append(worklist, idx)
			}
			col.Transitions[i][sym] = idx
		}
	}

	return col, nil
}
