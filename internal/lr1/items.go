// Package lr1 implements Component G: canonical LR(1) item sets, the
// shift/reduce/goto table, and the stack-driven bottom-up parser
// (dragon book Algorithm 4.44), plus the LALR(1) and SLR(1) table flavors
// built on the same item machinery.
package lr1

import (
	"sort"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// AugmentedStart is the fresh start non-terminal added when augmenting a
// grammar for canonical LR construction: AugmentedStart -> OldStart.
const AugmentedStart = "S'"

// Item is one LR(1) item: a production with a dot position and a single
// lookahead terminal.
type Item struct {
	NonTerminal string
	Body        []string
	Dot         int
	Lookahead   string
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol() (string, bool) {
	if it.Dot >= len(it.Body) {
		return "", false
	}
	return it.Body[it.Dot], true
}

// AtEnd reports whether the dot has reached the end of the body (a
// candidate for reduction).
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.Body)
}

// Advanced returns the item with the dot moved one symbol to the right.
func (it Item) Advanced() Item {
	return Item{NonTerminal: it.NonTerminal, Body: it.Body, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Key is a canonical string encoding of the item, used as a map/set key
// since Item itself (holding a slice) is not comparable.
func (it Item) Key() string {
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
	sb.WriteString(",")
	sb.WriteString(it.Lookahead)
	return sb.String()
}

// String renders the item in the traditional "A -> alpha . beta, a" form.
func (it Item) String() string {
	var sb strings.Builder
	sb.WriteString(it.NonTerminal)
	sb.WriteString(" -> ")
	for i, s := range it.Body {
		if i == it.Dot {
			sb.WriteString(". ")
		}
		sb.WriteString(s)
		sb.WriteString(" ")
	}
	if it.Dot == len(it.Body) {
		sb.WriteString(". ")
	}
	sb.WriteString(", ")
	sb.WriteString(it.Lookahead)
	return sb.String()
}

// ItemSet is an insertion-ordered set of items, keyed by Item.Key.
type ItemSet struct {
	byKey map[string]Item
	order []string
}

func newItemSet() *ItemSet {
	return &ItemSet{byKey: map[string]Item{}}
}

// Add inserts it if not already present, reporting whether it was new.
func (s *ItemSet) Add(it Item) bool {
	k := it.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = it
	s.order = append(s.order, k)
	return true
}

// Items returns the set's members in insertion order.
func (s *ItemSet) Items() []Item {
	out := make([]Item, len(s.order))
	for i, k := range s.order {
		out[i] = s.byKey[k]
	}
	return out
}

// Key returns a canonical key for the whole set (its items' keys, sorted
// and joined), used to detect when two states' item sets coincide during
// canonical collection construction.
func (s *ItemSet) Key() string {
	keys := append([]string{}, s.order...)
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// Closure computes the closure of items per dragon book Algorithm 4.42:
// repeatedly, for every item [A -> alpha . B beta, a] with B a
// non-terminal, add [B -> . gamma, b] for every production B -> gamma and
// every b in FIRST(beta a), until no new items are added.
func Closure(g *grammar.Grammar, items *ItemSet) (*ItemSet, error) {
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

			rest := append(append([]string{}, it.Body[it.Dot+1:]...), it.Lookahead)
			lookaheads, err := g.FirstOfSequence(rest)
			if err != nil {
				return nil, err
			}

			rule, _ := g.Rule(sym)
			for _, prod := range rule.Productions {
				body := []string(prod)
				for la := range lookaheads {
					if out.Add(Item{NonTerminal: sym, Body: body, Dot: 0, Lookahead: la}) {
						changed = true
					}
				}
			}
		}
	}

	return out, nil
}

// Goto computes GOTO(items, symbol) per Algorithm 4.42: advance the dot
// past symbol in every item that has it next, then close the result.
func Goto(g *grammar.Grammar, items *ItemSet, symbol string) (*ItemSet, error) {
	moved := newItemSet()
	for _, it := range items.Items() {
		sym, ok := it.NextSymbol()
		if ok && sym == symbol {
			moved.Add(it.Advanced())
		}
	}
	if len(moved.order) == 0 {
		return moved, nil
	}
	return Closure(g, moved)
}

// symbolsAfterDot collects the distinct symbols immediately following the
// dot across every item in items, in first-seen order.
func symbolsAfterDot(items *ItemSet) []string {
	seen := langutil.NewSet[string]()
	var out []string
	for _, it := range items.Items() {
		sym, ok := it.NextSymbol()
		if !ok || seen.Has(sym) {
			continue
		}
		seen.Add(sym)
		out = append(out, sym)
	}
	return out
}

// Augment returns a copy of g with a fresh start production
// AugmentedStart -> g.StartSymbol() added and made the start symbol, per
// the canonical LR
// construction's requirement of a unique entry production.
func Augment(g *grammar.Grammar) *grammar.Grammar {
	out := g.Copy()
	name := AugmentedStart
	for out.IsNonTerminal(name) {
		name = name + "'"
	}
	out.AddProduction(name, []string{g.StartSymbol()})
	out.SetStart(name)
	return out
}

// ValidateEntry checks that aug's start symbol already has the canonical LR
// entry shape S' -> S: exactly one production, with a single-symbol target
// that is not the start symbol itself. BuildTable never needs this, since
// it always produces aug via Augment; it guards BuildTableFromAugmented,
// which accepts a grammar a caller has already augmented themselves (for
// instance one loaded straight from the grammar text format with its own
// S' entry written out).
func ValidateEntry(aug *grammar.Grammar) error {
	rule, ok := aug.Rule(aug.StartSymbol())
	if !ok || len(rule.Productions) != 1 {
		return langerr.EntryPatternNotMatch(aug.StartSymbol())
	}
	prod := grammar.Production{Source: aug.StartSymbol(), Target: rule.Productions[0]}
	if len(rule.Productions[0]) != 1 || rule.Productions[0][0] == aug.StartSymbol() {
		return langerr.EntryPatternNotMatch(prod.String())
	}
	return nil
}
