package parsetree

import (
	"fmt"

	"github.com/Oya-Learning-Notes/Compilers/internal/graphviz"
)

// DOT renders every entry tree as Graphviz source, one subtree per entry.
func (t *Tree) DOT(name string) string {
	g := graphviz.New(name)
	counter := 0
	for _, e := range t.Entries {
		addNodeDOT(g, e, &counter)
	}
	return g.DOT()
}

func addNodeDOT(g *graphviz.Graph, n *Node, counter *int) string {
	*counter++
	key := fmt.Sprintf("node%d", *counter)
	shape := "ellipse"
	label := n.Symbol
	if n.Terminal {
		shape = "box"
		if n.Token != nil {
			label = fmt.Sprintf("%s %q", n.Symbol, n.Token.Lexeme)
		}
	}
	id := g.AddNode(key, label, shape)

	for _, c := range n.Children {
		childID := addNodeDOT(g, c, counter)
		g.AddEdge(id, childID, "")
	}
	return id
}
