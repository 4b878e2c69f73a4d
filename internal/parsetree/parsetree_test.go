package parsetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Derive_ReplacesFrontierLeaf(t *testing.T) {
	assert := assert.New(t)

	tree := NewTopDown("S")
	isTerminal := func(sym string) bool { return sym != "S" }
	err := tree.Derive(0, "S -> a S b", []string{"a", "S", "b"}, isTerminal)
	assert.NoError(err)
	assert.Len(tree.Leaves, 3)
	assert.Equal("a", tree.Leaves[0].Symbol)
	assert.True(tree.Leaves[0].Terminal)
	assert.Equal("S", tree.Leaves[1].Symbol)
	assert.False(tree.Leaves[1].Terminal)
	assert.Equal("b", tree.Leaves[2].Symbol)
	assert.True(tree.Leaves[2].Terminal)
}

func Test_Derive_EpsilonProduction_AddsSingleEpsilonChild(t *testing.T) {
	assert := assert.New(t)

	tree := NewTopDown("S")
	err := tree.Derive(0, "S -> epsilon", nil, func(string) bool { return false })
	assert.NoError(err)
	assert.Len(tree.Leaves, 1)
	assert.Equal("", tree.Leaves[0].Symbol)
}

func Test_Derive_OutOfRangeIndex_Errors(t *testing.T) {
	assert := assert.New(t)
	tree := NewTopDown("S")
	err := tree.Derive(5, "S -> a", []string{"a"}, func(string) bool { return true })
	assert.Error(err)
}

func Test_TopDownValid_RequiresMatchedFrontier(t *testing.T) {
	assert := assert.New(t)

	tree := NewTopDown("S")
	assert.NoError(tree.Derive(0, "S -> a", []string{"a"}, func(string) bool { return true }))
	assert.False(tree.TopDownValid([]Token{{Type: "a", Lexeme: "a"}}))

	assert.NoError(tree.MarkMatched(0, Token{Type: "a", Lexeme: "a"}))
	assert.True(tree.TopDownValid([]Token{{Type: "a", Lexeme: "a"}}))
}

func Test_Reduce_CollapsesSpanIntoOneNode(t *testing.T) {
	assert := assert.New(t)

	tree := NewBottomUp("S", []Token{{Type: "a"}, {Type: "b"}})
	node, err := tree.Reduce(0, 2, "S", "S -> a b")
	assert.NoError(err)
	assert.Equal("S", node.Symbol)
	assert.Len(tree.Leaves, 1)
	assert.Len(tree.Entries, 1)
	assert.True(tree.BottomUpValid(true))
}

func Test_Reduce_OutOfRangeSpan_Errors(t *testing.T) {
	assert := assert.New(t)

	tree := NewBottomUp("S", []Token{{Type: "a"}})
	_, err := tree.Reduce(0, 5, "S", "S -> a b")
	assert.Error(err)
}
