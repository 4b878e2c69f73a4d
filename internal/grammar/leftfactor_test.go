package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LeftFactor_SplitsSharedPrefixes(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddProduction("S", []string{"if", "E", "then", "S"})
	g.AddProduction("S", []string{"if", "E", "then", "S", "else", "S"})
	g.AddProduction("S", []string{"other"})
	g.SetStart("S")

	out, err := g.LeftFactor()
	assert.NoError(err)

	rule, ok := out.Rule("S")
	assert.True(ok)

	seenPrefixes := map[string]int{}
	for _, p := range rule.Productions {
		if len(p) == 0 {
			continue
		}
		seenPrefixes[p[0]]++
	}
	for prefix, count := range seenPrefixes {
		assert.LessOrEqualf(count, 1, "prefix %q shared by %d alternatives after factoring", prefix, count)
	}
}

func Test_LeftFactor_RootDivergenceDoesNotSpawnExtraNonTerminal(t *testing.T) {
	assert := assert.New(t)

	// A -> aY | aZ | b: "a" and "b" are distinct first symbols at the root,
	// not a shared prefix, so only the "a"-rooted pair should factor.
	g := New()
	g.AddProduction("A", []string{"a", "Y"})
	g.AddProduction("A", []string{"a", "Z"})
	g.AddProduction("A", []string{"b"})
	g.SetStart("A")

	out, err := g.LeftFactor()
	assert.NoError(err)

	rule, ok := out.Rule("A")
	assert.True(ok)
	assert.Len(rule.Productions, 2, "A should have exactly two top-level alternatives: a-prefixed and b")

	var aProd Derivation
	var sawB bool
	for _, p := range rule.Productions {
		switch p[0] {
		case "a":
			aProd = p
		case "b":
			assert.Len(p, 1)
			sawB = true
		default:
			t.Fatalf("unexpected top-level alternative %v", p)
		}
	}
	assert.True(sawB, "A should still directly derive b")
	assert.Len(aProd, 2, "A's a-prefixed alternative should be exactly [a, fresh]")

	fresh := aProd[1]
	assert.NotEqual("A", fresh)

	freshRule, ok := out.Rule(fresh)
	assert.True(ok)
	assert.Len(freshRule.Productions, 2)

	seenSuffixes := map[string]bool{}
	for _, p := range freshRule.Productions {
		assert.Len(p, 1)
		seenSuffixes[p[0]] = true
	}
	assert.True(seenSuffixes["Y"])
	assert.True(seenSuffixes["Z"])
}

func Test_LeftFactor_LeavesAlreadyFactoredGrammarEquivalent(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	out, err := g.LeftFactor()
	assert.NoError(err)

	rule, ok := out.Rule("E")
	assert.True(ok)
	assert.Len(rule.Productions, 1)
}
