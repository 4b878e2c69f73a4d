package ll1

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/lexer"
	"github.com/Oya-Learning-Notes/Compilers/internal/parsetree"
)

func toTreeTokens(toks []lexer.Token) []parsetree.Token {
	out := make([]parsetree.Token, len(toks))
	for i, t := range toks {
		out[i] = parsetree.Token{Type: t.Type, Lexeme: t.Lexeme}
	}
	return out
}

// exprGrammar builds the classic non-left-recursive expression grammar:
//
//	E      -> T Eprime
//	Eprime -> + T Eprime | epsilon
//	T      -> id
func exprGrammar() *grammar.Grammar {
	g := grammar.New()
	g.AddProduction("E", []string{"T", "Eprime"})
	g.AddProduction("Eprime", []string{"+", "T", "Eprime"})
	g.AddProduction("Eprime", []string{})
	g.AddProduction("T", []string{"id"})
	g.SetStart("E")
	return g
}

func Test_BuildTable_NoConflictsOnLL1Grammar(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	table, err := BuildTable(g, false)
	assert.NoError(err)

	entry, ok := table.Lookup("E", "id")
	assert.True(ok)
	assert.Equal(grammar.Derivation{"T", "Eprime"}, entry.Production)
}

func Test_BuildTable_DetectsSelectSetConflict(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddProduction("S", []string{"a"})
	g.AddProduction("S", []string{"a", "b"})
	g.SetStart("S")

	_, err := BuildTable(g, false)
	assert.Error(err)
}

func Test_Parser_Parse_AcceptsValidSentence(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	table, err := BuildTable(g, false)
	assert.NoError(err)

	parser := NewParser(g, table)
	toks := []lexer.Token{
		{Type: "id", Lexeme: "x"},
		{Type: "+", Lexeme: "+"},
		{Type: "id", Lexeme: "y"},
	}

	tree, err := parser.Parse(toks)
	assert.NoError(err)
	assert.True(tree.TopDownValid(toTreeTokens(toks)))
}

func Test_Parser_Parse_RejectsMismatchedTokenStream(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	table, err := BuildTable(g, false)
	assert.NoError(err)

	parser := NewParser(g, table)
	toks := []lexer.Token{
		{Type: "+", Lexeme: "+"},
	}

	_, err = parser.Parse(toks)
	assert.Error(err)
}

func Test_Parser_Parse_TableMissReportsNoMove(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	table, err := BuildTable(g, false)
	assert.NoError(err)

	parser := NewParser(g, table)
	toks := []lexer.Token{
		{Type: "id", Lexeme: "x"},
		{Type: "bogus", Lexeme: "?"},
	}

	_, err = parser.Parse(toks)
	assert.Error(err)
	assert.True(langerr.Is(err, langerr.KindNoMove))
}

func Test_Parser_Parse_UnconsumedInputReportsIncompleteParse(t *testing.T) {
	assert := assert.New(t)

	// S -> a: the whole derivation is a single terminal, so a second "a"
	// token is never visited by the frontier loop at all and must be
	// caught by the trailing consumed-length check instead.
	g := grammar.New()
	g.AddProduction("S", []string{"a"})
	g.SetStart("S")

	table, err := BuildTable(g, false)
	assert.NoError(err)

	parser := NewParser(g, table)
	toks := []lexer.Token{
		{Type: "a", Lexeme: "a"},
		{Type: "a", Lexeme: "a"},
	}

	_, err = parser.Parse(toks)
	assert.Error(err)
	assert.True(langerr.Is(err, langerr.KindIncompleteParse))
}
