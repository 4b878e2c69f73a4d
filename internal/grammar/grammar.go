// Package grammar implements Component D (CFG analysis) and Component E
// (grammar transforms) of the toolkit: Production, Rule, and Grammar model
// a context-free grammar, AddProduction/Validate enforce well-formedness,
// and FIRST/FOLLOW/SELECT, left-recursion elimination, and left-factoring
// all build on that model. FIRST and FOLLOW use an iterative fixed-point
// formulation rather than recursive set-building.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// EndOfInput is the distinguished terminal that cannot appear in a normal
// input alphabet and marks the end of an input sentence in FOLLOW sets and
// LR lookaheads.
const EndOfInput = "$"

// Derivation is an ordered sequence of symbols; a nil or empty Derivation
// means epsilon.
type Derivation []string

// IsEpsilon returns whether d is the empty derivation.
func (d Derivation) IsEpsilon() bool {
	return len(d) == 0
}

func (d Derivation) String() string {
	if d.IsEpsilon() {
		return "ε"
	}
	return strings.Join(d, " ")
}

// Equal returns whether d and o contain the same symbols in the same order.
func (d Derivation) Equal(o Derivation) bool {
	return langutil.EqualSlices([]string(d), []string(o))
}

// Production is one alternative of a non-terminal: source -> target.
type Production struct {
	Source NonTerminal
	Target Derivation
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.Source, p.Target)
}

// Equal returns whether p and o are the same production (same LHS, same
// RHS).
func (p Production) Equal(o Production) bool {
	return p.Source == o.Source && p.Target.Equal(o.Target)
}

// NonTerminal names a non-terminal symbol. By convention, non-terminal
// names begin with an uppercase letter and terminal names do not.
type NonTerminal = string

// Rule collects every production for one non-terminal.
type Rule struct {
	NonTerminal NonTerminal
	Productions []Derivation
}

func (r Rule) String() string {
	alts := make([]string, len(r.Productions))
	for i, p := range r.Productions {
		alts[i] = p.String()
	}
	return fmt.Sprintf("%s -> %s", r.NonTerminal, strings.Join(alts, " | "))
}

// HasProduction returns whether r already has a production equal to target.
func (r Rule) HasProduction(target Derivation) bool {
	for _, p := range r.Productions {
		if p.Equal(target) {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of r.
func (r Rule) Copy() Rule {
	out := Rule{NonTerminal: r.NonTerminal, Productions: make([]Derivation, len(r.Productions))}
	for i, p := range r.Productions {
		d := make(Derivation, len(p))
		copy(d, p)
		out.Productions[i] = d
	}
	return out
}

// Grammar is a set of productions grouped by LHS, plus an optional entry
// symbol and memoized FIRST and FOLLOW tables. Used symbols are recomputed
// on every UsedSymbols call.
type Grammar struct {
	order []string // non-terminals, in first-added order
	rules map[NonTerminal]*Rule
	start NonTerminal

	firstCache  map[string]langutil.Set[string]
	followCache map[string]langutil.Set[string]
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{rules: map[NonTerminal]*Rule{}}
}

// SetStart sets the grammar's entry non-terminal.
func (g *Grammar) SetStart(nt NonTerminal) {
	g.start = nt
	g.invalidateCaches()
}

// StartSymbol returns the grammar's entry non-terminal, defaulting to the
// first non-terminal added if none was explicitly set.
func (g *Grammar) StartSymbol() NonTerminal {
	if g.start != "" {
		return g.start
	}
	if len(g.order) > 0 {
		return g.order[0]
	}
	return ""
}

func (g *Grammar) invalidateCaches() {
	g.firstCache = nil
	g.followCache = nil
}

// AddProduction adds one production nt -> rhs to the grammar, creating the
// rule for nt if this is its first production. rhs is copied.
func (g *Grammar) AddProduction(nt NonTerminal, rhs []string) {
	if _, ok := g.rules[nt]; !ok {
		g.rules[nt] = &Rule{NonTerminal: nt}
		g.order = append(g.order, nt)
	}
	d := make(Derivation, len(rhs))
	copy(d, rhs)
	if !g.rules[nt].HasProduction(d) {
		g.rules[nt].Productions = append(g.rules[nt].Productions, d)
	}
	g.invalidateCaches()
}

// Rule returns the rule for non-terminal nt and whether it exists.
func (g *Grammar) Rule(nt NonTerminal) (Rule, bool) {
	r, ok := g.rules[nt]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// NonTerminals returns every non-terminal with at least one production, in
// the order they were first added.
func (g *Grammar) NonTerminals() []NonTerminal {
	out := make([]NonTerminal, len(g.order))
	copy(out, g.order)
	return out
}

// IsNonTerminal reports whether sym names a non-terminal defined in g (has
// at least one rule). By the grammar's naming convention this coincides
// with "begins with an uppercase letter", but IsNonTerminal checks the
// actual rule set so that unrecognized uppercase symbols are correctly
// treated as used-but-undefined (NoValidDerivation) rather than silently
// accepted as terminals.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// IsTerminal reports whether sym is not one of the grammar's non-terminals
// (and is not the end-of-input marker). Any symbol appearing only on the
// RHS of productions and never defined as a rule is a terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	if sym == EndOfInput {
		return false
	}
	return !g.IsNonTerminal(sym)
}

// UsedSymbols returns every symbol mentioned anywhere in the grammar, on
// either side of any production.
func (g *Grammar) UsedSymbols() langutil.Set[string] {
	used := langutil.NewSet[string]()
	for _, nt := range g.order {
		used.Add(nt)
		for _, p := range g.rules[nt].Productions {
			for _, sym := range p {
				used.Add(sym)
			}
		}
	}
	return used
}

// Terminals returns every terminal symbol used anywhere in the grammar,
// sorted.
func (g *Grammar) Terminals() []string {
	used := g.UsedSymbols()
	terms := []string{}
	for sym := range used {
		if g.IsTerminal(sym) {
			terms = append(terms, sym)
		}
	}
	sort.Strings(terms)
	return terms
}

// Productions returns every production in the grammar, in rule-insertion
// then alternative order. This is the flattened view used by the
// "CFG(productions).productions is a permutation of the input" round-trip
// property.
func (g *Grammar) Productions() []Production {
	var out []Production
	for _, nt := range g.order {
		for _, p := range g.rules[nt].Productions {
			out = append(out, Production{Source: nt, Target: p})
		}
	}
	return out
}

// Validate checks that the grammar is well-formed: the entry symbol, if
// set, must be a used symbol, and every non-terminal used on any RHS must
// have at least one production of its own.
func (g *Grammar) Validate() error {
	used := g.UsedSymbols()
	if g.start != "" && !used.Has(g.start) {
		return langerr.InvalidInput("entry symbol %q is not used anywhere in the grammar", g.start)
	}

	for _, nt := range g.order {
		for _, p := range g.rules[nt].Productions {
			for _, sym := range p {
				if isNonTerminalName(sym) && !g.IsNonTerminal(sym) {
					return langerr.NoValidDerivation(sym)
				}
			}
		}
	}
	return nil
}

// isNonTerminalName reports whether sym follows the grammar's naming
// convention for non-terminals (begins with an uppercase ASCII letter).
func isNonTerminalName(sym string) bool {
	if sym == "" {
		return false
	}
	r := sym[0]
	return r >= 'A' && r <= 'Z'
}

// Copy returns a deep copy of g, including its entry symbol but not its
// memoized FIRST/FOLLOW caches.
func (g *Grammar) Copy() *Grammar {
	out := New()
	out.start = g.start
	out.order = make([]NonTerminal, len(g.order))
	copy(out.order, g.order)
	for nt, r := range g.rules {
		copied := r.Copy()
		out.rules[nt] = &copied
	}
	return out
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.order {
		sb.WriteString(g.rules[nt].String())
		sb.WriteRune('\n')
	}
	return sb.String()
}
