package lr1

import (
	"strconv"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// ActionType distinguishes the four kinds of ACTION table cell.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION[state, terminal] cell.
type Action struct {
	Type       ActionType
	Target     int // shift: state to move to
	Production grammar.Production
}

// Table is a full LR shift/reduce/goto table: ACTION indexed by
// (state, terminal), GOTO indexed by (state, non-terminal).
type Table struct {
	Augmented *grammar.Grammar
	Action    []map[string]Action
	Goto      []map[string]int
}

// BuildTable constructs the canonical LR(1) table for g. Its table-filling
// step, buildFromCollection, also fills LALR(1) tables from a merged
// collection; SLR(1) tables are filled by BuildSLR1Table's own loop.
// If allowConflict is false, a shift/reduce or reduce/reduce conflict aborts
// construction and returns the corresponding langerr; if true, shift wins
// over reduce (the conventional default resolution) and the first-seen
// reduction wins over a later one, and construction continues.
func BuildTable(g *grammar.Grammar, allowConflict bool) (*Table, error) {
	aug := Augment(g)
	col, err := Build(aug)
	if err != nil {
		return nil, err
	}
	return buildFromCollection(aug, col, allowConflict)
}

// BuildTableFromAugmented builds a canonical LR(1) table from a grammar the
// caller has already augmented themselves (aug.StartSymbol() must already
// have the S' -> S entry shape ValidateEntry checks for), instead of having
// BuildTable derive one via Augment. Used for grammars loaded straight from
// the text format with their own entry production already written out.
func BuildTableFromAugmented(aug *grammar.Grammar, allowConflict bool) (*Table, error) {
	if err := ValidateEntry(aug); err != nil {
		return nil, err
	}
	col, err := Build(aug)
	if err != nil {
		return nil, err
	}
	return buildFromCollection(aug, col, allowConflict)
}

func buildFromCollection(aug *grammar.Grammar, col *Collection, allowConflict bool) (*Table, error) {
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
			if it.NonTerminal == aug.StartSymbol() && equalBody(it.Body, acceptBody) && it.Lookahead == grammar.EndOfInput {
				if err := t.setAction(i, grammar.EndOfInput, Action{Type: ActionAccept}, allowConflict); err != nil {
					return nil, err
				}
				continue
			}
			prod := grammar.Production{Source: it.NonTerminal, Target: grammar.Derivation(it.Body)}
			if err := t.setAction(i, it.Lookahead, Action{Type: ActionReduce, Production: prod}, allowConflict); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func actionEqual(a, b Action) bool {
	if a.Type != b.Type || a.Target != b.Target {
		return false
	}
	return a.Production.Equal(b.Production)
}

func equalBody(a, b []string) bool {
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

func (t *Table) setAction(state int, term string, a Action, allowConflict bool) error {
	existing, ok := t.Action[state][term]
	if !ok {
		t.Action[state][term] = a
		return nil
	}
	if actionEqual(existing, a) {
		return nil
	}

	if !allowConflict {
		if existing.Type == ActionShift || a.Type == ActionShift {
			reduceProd := existing.Production
			if existing.Type != ActionReduce {
				reduceProd = a.Production
			}
			return langerr.ShiftReduceConflict(strconv.Itoa(state), term, reduceProd.String())
		}
		return langerr.ReduceReduceConflict(strconv.Itoa(state), term, existing.Production.String(), a.Production.String())
	}

	// shift wins over reduce; otherwise keep the first-seen action.
	if a.Type == ActionShift && existing.Type == ActionReduce {
		t.Action[state][term] = a
	}
	return nil
}
