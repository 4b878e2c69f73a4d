package graphviz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AddNode_DedupsByCallerKey(t *testing.T) {
	assert := assert.New(t)

	g := New("g")
	id1 := g.AddNode("state-0", "q0", "circle")
	id2 := g.AddNode("state-0", "q0 (again)", "doublecircle")

	assert.Equal(id1, id2)
	assert.Len(g.nodes, 1)
	assert.Equal("q0", g.nodes[0].Label)
}

func Test_AddNode_DistinctKeysGetDistinctIDs(t *testing.T) {
	assert := assert.New(t)

	g := New("g")
	id1 := g.AddNode("a", "A", "")
	id2 := g.AddNode("b", "B", "")

	assert.NotEqual(id1, id2)
	assert.Len(g.nodes, 2)
}

func Test_DOT_RendersNodesAndEdges(t *testing.T) {
	assert := assert.New(t)

	g := New("my graph")
	a := g.AddNode("a", "start", "doublecircle")
	b := g.AddNode("b", "end", "")
	g.AddEdge(a, b, "x")

	dot := g.DOT()
	assert.True(strings.HasPrefix(dot, "digraph my_graph {\n"))
	assert.Contains(dot, "shape=doublecircle")
	assert.Contains(dot, "shape=circle")
	assert.Contains(dot, a+" -> "+b+" [label=\"x\"];")
}

func Test_DOT_EscapesLabelsWithQuotesAndNewlines(t *testing.T) {
	assert := assert.New(t)

	g := New("g")
	id := g.AddNode("a", "line one\nsays \"hi\"", "box")

	dot := g.DOT()
	assert.Contains(dot, id+` [label="line one\nsays \"hi\"", shape=box];`)
}

func Test_QuoteIdent_EmptyNameFallsBackToG(t *testing.T) {
	assert := assert.New(t)

	g := New("")
	dot := g.DOT()
	assert.True(strings.HasPrefix(dot, "digraph G {\n"))
}
