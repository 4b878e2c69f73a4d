package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EliminateLeftRecursion_RemovesDirectRecursion(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddProduction("E", []string{"E", "+", "T"})
	g.AddProduction("E", []string{"T"})
	g.AddProduction("T", []string{"id"})
	g.SetStart("E")

	out, err := g.EliminateLeftRecursion()
	assert.NoError(err)
	assert.False(out.HasLeftRecursion())

	rule, ok := out.Rule("E")
	assert.True(ok)
	for _, p := range rule.Productions {
		if len(p) > 0 {
			assert.NotEqual(NonTerminal("E"), p[0])
		}
	}
}

func Test_EliminateLeftRecursion_RemovesIndirectRecursion(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddProduction("S", []string{"A", "a"})
	g.AddProduction("S", []string{"b"})
	g.AddProduction("A", []string{"S", "c"})
	g.AddProduction("A", []string{"d"})
	g.SetStart("S")

	assert.True(g.HasLeftRecursion())

	out, err := g.EliminateLeftRecursion()
	assert.NoError(err)
	assert.False(out.HasLeftRecursion())
}

func Test_HasLeftRecursion_FalseOnAcyclicGrammar(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()
	assert.False(g.HasLeftRecursion())
}
