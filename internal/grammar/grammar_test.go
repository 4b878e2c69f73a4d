package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprGrammar() *Grammar {
	g := New()
	g.AddProduction("E", []string{"T", "Eprime"})
	g.AddProduction("Eprime", []string{"+", "T", "Eprime"})
	g.AddProduction("Eprime", []string{})
	g.AddProduction("T", []string{"id"})
	g.SetStart("E")
	return g
}

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() *Grammar
		expectErr bool
	}{
		{
			name:      "well formed grammar",
			build:     exprGrammar,
			expectErr: false,
		},
		{
			name: "non-terminal used but never defined",
			build: func() *Grammar {
				g := New()
				g.AddProduction("S", []string{"A"})
				g.SetStart("S")
				return g
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			err := tc.build().Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Grammar_IsTerminal_IsNonTerminal(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	assert.True(g.IsNonTerminal("E"))
	assert.True(g.IsNonTerminal("Eprime"))
	assert.False(g.IsTerminal("E"))
	assert.True(g.IsTerminal("id"))
	assert.True(g.IsTerminal("+"))
}

func Test_Grammar_First(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	first, err := g.First("E")
	assert.NoError(err)
	assert.True(first.Has("id"))

	firstEprime, err := g.First("Eprime")
	assert.NoError(err)
	assert.True(firstEprime.Has("+"))
}

func Test_Grammar_Follow(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	follow, err := g.Follow("Eprime")
	assert.NoError(err)
	assert.True(follow.Has(EndOfInput))
}

func Test_Grammar_Select_DisjointForLL1Grammar(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	ok, err := g.IsLL1()
	assert.NoError(err)
	assert.True(ok)
}

func Test_Grammar_UsedSymbols(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	used := g.UsedSymbols()
	assert.True(used.Has("E"))
	assert.True(used.Has("id"))
	assert.True(used.Has("+"))
}
