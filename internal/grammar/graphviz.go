package grammar

import (
	"fmt"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/graphviz"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// PrefixTreeDOT renders the shared-prefix trie LeftFactor builds over nt's
// alternatives as Graphviz source, so the branching points that trigger
// left-factoring can be inspected directly.
func (g *Grammar) PrefixTreeDOT(nt NonTerminal, name string) (string, error) {
	rule, ok := g.Rule(nt)
	if !ok {
		return "", langerr.InvalidInput("no such non-terminal: %s", nt)
	}
	tree := buildPrefixTree(rule.Productions)

	out := graphviz.New(name)
	counter := 0
	addPrefixNodeDOT(out, tree, &counter, "circle")
	return out.DOT(), nil
}

func addPrefixNodeDOT(g *graphviz.Graph, n *prefixNode, counter *int, shape string) string {
	*counter++
	key := fmt.Sprintf("p%d", *counter)
	id := g.AddNode(key, "•", shape)

	syms := make([]string, 0, len(n.children))
	for sym := range n.children {
		syms = append(syms, sym)
	}
	for _, sym := range syms {
		child := n.children[sym]
		label := sym
		shape := "circle"
		if sym == sentinelEnd {
			label = "$"
			shape = "doublecircle"
		}
		childID := addPrefixNodeDOT(g, child, counter, shape)
		g.AddEdge(id, childID, strings.TrimSpace(label))
	}
	return id
}
