package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oya-Learning-Notes/Compilers/internal/regexast"
)

func numberIdentifierLexer() *Lexer {
	l := New()
	// keywords win ties against the generic identifier pattern via lower priority.
	l.AddDefinition("KW_IF", regexast.Literal("if"), 0)
	l.AddDefinition("IDENT", regexast.Plus(regexast.CharClass{Symbols: letters()}), 1)
	l.AddDefinition("NUMBER", regexast.Plus(regexast.CharClass{Symbols: digits()}), 1)
	l.AddDefinition("WS", regexast.Plus(regexast.CharClass{Symbols: []string{" "}}), 2)
	return l
}

func letters() []string {
	var out []string
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, string(c))
	}
	return out
}

func digits() []string {
	var out []string
	for c := '0'; c <= '9'; c++ {
		out = append(out, string(c))
	}
	return out
}

func Test_Tokenize_LongestMatchWithPriorityTiebreak(t *testing.T) {
	assert := assert.New(t)

	l := numberIdentifierLexer()
	toks, err := l.Tokenize("if x 42")
	assert.NoError(err)

	got := Filter(toks, "WS")
	assert.Len(got, 3)
	assert.Equal("KW_IF", got[0].Type)
	assert.Equal("IDENT", got[1].Type)
	assert.Equal("NUMBER", got[2].Type)
}

func Test_Tokenize_IdentifierBeatsKeywordPrefix(t *testing.T) {
	assert := assert.New(t)

	l := numberIdentifierLexer()
	toks, err := l.Tokenize("iffy")
	assert.NoError(err)

	got := Filter(toks, "WS")
	assert.Len(got, 1)
	assert.Equal("IDENT", got[0].Type)
	assert.Equal("iffy", got[0].Lexeme)
}

func Test_Tokenize_ErrorsOnNoMatch(t *testing.T) {
	assert := assert.New(t)

	l := numberIdentifierLexer()
	_, err := l.Tokenize("x#y")
	assert.Error(err)
}
