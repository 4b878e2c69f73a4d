// Package ll1 implements Component F: SELECT-set table construction
// (dragon book Algorithm 4.31) and a top-down, table-driven LL(1) parser
// that walks a parse tree's leftmost-leaf-driven frontier instead of
// threading parallel symbol/node stacks through the parse loop.
package ll1

import (
	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// Entry is one occupied cell of the LL(1) table: the production chosen for
// (non-terminal, lookahead).
type Entry struct {
	NonTerminal string
	Production  grammar.Derivation
}

// Table is the LL(1) parse table M[A, t] -> A -> alpha.
type Table struct {
	g      *grammar.Grammar
	matrix langutil.Matrix2[string, string, Entry]
}

// BuildTable constructs the LL(1) table for g. If allowConflict is false
// (the default), a SELECT-set conflict on any non-terminal aborts
// construction and returns langerr.SelectSetConflict. If allowConflict is
// true, the first production encountered for a conflicting cell wins and
// construction continues, so that the caller can still inspect the
// resulting (now inconsistent) table.
func BuildTable(g *grammar.Grammar, allowConflict bool) (*Table, error) {
	t := &Table{g: g, matrix: langutil.NewMatrix2[string, string, Entry]()}

	for _, nt := range g.NonTerminals() {
		rule, _ := g.Rule(nt)

		selectSets := make([]langutil.Set[string], len(rule.Productions))
		for i, prod := range rule.Productions {
			set, err := g.Select(nt, prod)
			if err != nil {
				return nil, err
			}
			selectSets[i] = set
		}

		for i, prod := range rule.Productions {
			for term := range selectSets[i] {
				if existing, ok := t.matrix.Get(nt, term); ok {
					if !existing.Production.Equal(prod) {
						if !allowConflict {
							return nil, langerr.SelectSetConflict(nt, conflictingTerms(selectSets), productionStrings(nt, rule.Productions))
						}
						continue
					}
				}
				t.matrix.Set(nt, term, Entry{NonTerminal: nt, Production: prod})
			}
		}
	}

	return t, nil
}

func conflictingTerms(sets []langutil.Set[string]) []string {
	seen := map[string]int{}
	for _, s := range sets {
		for t := range s {
			seen[t]++
		}
	}
	var out []string
	for t, count := range seen {
		if count > 1 {
			out = append(out, t)
		}
	}
	return out
}

func productionStrings(nt string, prods []grammar.Derivation) []string {
	out := make([]string, len(prods))
	for i, p := range prods {
		out[i] = grammar.Production{Source: nt, Target: p}.String()
	}
	return out
}

// Lookup returns the table entry for (nonTerminal, lookahead), if any.
func (t *Table) Lookup(nonTerminal, lookahead string) (Entry, bool) {
	return t.matrix.Get(nonTerminal, lookahead)
}

// String renders the table as a non-terminal x terminal grid via rosed.
func (t *Table) String() string {
	nonTerms := t.g.NonTerminals()
	terms := append(append([]string{}, t.g.Terminals()...), grammar.EndOfInput)

	return langutil.RenderTable(nonTerms, terms,
		func(nt string) string { return nt },
		func(term string) string { return term },
		func(nt string, term string) string {
			e, ok := t.matrix.Get(nt, term)
			if !ok {
				return ""
			}
			return grammar.Production{Source: e.NonTerminal, Target: e.Production}.String()
		},
	)
}
