package ll1

import (
	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/lexer"
	"github.com/Oya-Learning-Notes/Compilers/internal/parsetree"
)

// Parser is a table-driven top-down parser bound to one grammar/table pair.
type Parser struct {
	g     *grammar.Grammar
	table *Table
}

// NewParser binds a grammar to an already-built LL(1) table.
func NewParser(g *grammar.Grammar, table *Table) *Parser {
	return &Parser{g: g, table: table}
}

// Parse drives parsetree.Tree.Derive over tokens per the top-down loop:
// repeatedly inspect the leftmost unexpanded frontier leaf; if it is a
// terminal, match it against the next input token and advance both cursors;
// if it is a non-terminal, look up M[leaf, lookahead] and derive it, leaving
// the frontier cursor in place so the newly produced children are
// themselves visited next. Epsilon leaves are skipped without consuming
// input. The loop ends when the frontier cursor reaches the end of the
// frontier; success requires every input token to have been consumed and
// the tree to satisfy TopDownValid.
func (p *Parser) Parse(tokens []lexer.Token) (*parsetree.Tree, error) {
	ptoks := make([]parsetree.Token, len(tokens))
	for i, t := range tokens {
		ptoks[i] = parsetree.Token{Type: t.Type, Lexeme: t.Lexeme}
	}

	tree := parsetree.NewTopDown(p.g.StartSymbol())
	frontier := 0
	input := 0

	lookahead := func() string {
		if input >= len(ptoks) {
			return grammar.EndOfInput
		}
		return ptoks[input].Type
	}

	for frontier < len(tree.Leaves) {
		leaf := tree.Leaves[frontier]

		if leaf.Symbol == "" {
			frontier++
			continue
		}

		if p.g.IsTerminal(leaf.Symbol) {
			if input >= len(ptoks) || ptoks[input].Type != leaf.Symbol {
				return tree, langerr.TokenMismatch(input, leaf.Symbol, lookahead())
			}
			if err := tree.MarkMatched(frontier, ptoks[input]); err != nil {
				return tree, err
			}
			input++
			frontier++
			continue
		}

		entry, ok := p.table.Lookup(leaf.Symbol, lookahead())
		if !ok {
			return tree, langerr.NoMove(leaf.Symbol, lookahead())
		}

		prodStr := grammar.Production{Source: entry.NonTerminal, Target: entry.Production}.String()
		if err := tree.Derive(frontier, prodStr, entry.Production, p.g.IsTerminal); err != nil {
			return tree, err
		}
	}

	if input != len(ptoks) {
		return tree, langerr.IncompleteParse("derivation finished without consuming all input")
	}
	if !tree.TopDownValid(ptoks) {
		return tree, langerr.IncompleteParse("derivation finished but tree is not valid")
	}

	return tree, nil
}
