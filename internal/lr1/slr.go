package lr1

import (
	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// lr0Lookahead is the placeholder lookahead carried by every LR(0) item,
// since SLR(1) items ignore lookahead during closure/goto and consult
// FOLLOW only when filling in reduce actions.
const lr0Lookahead = ""

func closure0(g *grammar.Grammar, items *ItemSet) *ItemSet {
	out := newItemSet()
	for _, it := range items.Items() {
		out.Add(it)
	}
	changed := true
	for changed {
		changed = false
		for _, it := range out.Items() {
			sym, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}
			rule, _ := g.Rule(sym)
			for _, prod := range rule.Productions {
				if out.Add(Item{NonTerminal: sym, Body: []string(prod), Dot: 0, Lookahead: lr0Lookahead}) {
					changed = true
				}
			}
		}
	}
	return out
}

func goto0(g *grammar.Grammar, items *ItemSet, symbol string) *ItemSet {
	moved := newItemSet()
	for _, it := range items.Items() {
		sym, ok := it.NextSymbol()
		if ok && sym == symbol {
			moved.Add(it.Advanced())
		}
	}
	if len(moved.order) == 0 {
		return moved
	}
	return closure0(g, moved)
}

// BuildLR0Collection builds the canonical LR(0) item-set automaton for the
// augmented grammar aug, used as the basis of SLR(1) table construction.
func BuildLR0Collection(aug *grammar.Grammar) (*Collection, error) {
	startRule, _ := aug.Rule(aug.StartSymbol())
	seed := newItemSet()
	seed.Add(Item{NonTerminal: aug.StartSymbol(), Body: []string(startRule.Productions[0]), Dot: 0, Lookahead: lr0Lookahead})
	start := closure0(aug, seed)

	col := &Collection{States: []*ItemSet{start}, Transitions: []map[string]int{{}}}
	indexByKey := map[string]int{start.Key(): 0}

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		for _, sym := range symbolsAfterDot(col.States[i]) {
			target := goto0(aug, col.States[i], sym)
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

// BuildSLR1Table constructs an SLR(1) table: LR(0) item sets for the
// shift/goto structure, with reduce actions filled in for every complete
// item [A -> alpha .] across all of FOLLOW(A) rather than a tracked
// per-item lookahead.
func BuildSLR1Table(g *grammar.Grammar, allowConflict bool) (*Table, error) {
	aug := Augment(g)
	col, err := BuildLR0Collection(aug)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Augmented: aug,
		Action:    make([]map[string]Action, len(col.States)),
		Goto:      make([]map[string]int, len(col.States)),
	}
	for i := range t.Action {
		t.Action[i] = map[string]Action{}
		t.Goto[i] = map[string]int{}
	}

	startRule, _ := aug.Rule(aug.StartSymbol())
	acceptBody := []string(startRule.Productions[0])

	for i, state := range col.States {
		for sym, target := range col.Transitions[i] {
			if aug.IsTerminal(sym) {
				if err := t.setAction(i, sym, Action{Type: ActionShift, Target: target}, allowConflict); err != nil {
					return nil, err
				}
			} else {
				t.Goto[i][sym] = target
			}
		}

		for _, it := range state.Items() {
			if !it.AtEnd() {
				continue
			}
			if it.NonTerminal == aug.StartSymbol() && equalBody(it.Body, acceptBody) {
				if err := t.setAction(i, grammar.EndOfInput, Action{Type: ActionAccept}, allowConflict); err != nil {
					return nil, err
				}
				continue
			}

			follow, err := aug.Follow(it.NonTerminal)
			if err != nil {
				return nil, langerr.DidNotConverge("SLR(1) FOLLOW", 0)
			}
			prod := grammar.Production{Source: it.NonTerminal, Target: grammar.Derivation(it.Body)}
			for term := range follow {
				if err := t.setAction(i, term, Action{Type: ActionReduce, Production: prod}, allowConflict); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}
