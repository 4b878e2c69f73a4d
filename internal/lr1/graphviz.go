package lr1

import (
	"fmt"
	"strconv"

	"github.com/Oya-Learning-Notes/Compilers/internal/graphviz"
)

// DOT renders the canonical item-set automaton as Graphviz source: one node
// per state, labeled with its item set, one edge per GOTO transition.
func (c *Collection) DOT(name string) string {
	g := graphviz.New(name)

	ids := make([]string, len(c.States))
	for i, state := range c.States {
		var label string
		for _, it := range state.Items() {
			label += it.String() + "\n"
		}
		ids[i] = g.AddNode(strconv.Itoa(i), fmt.Sprintf("I%d\n%s", i, label), "box")
	}
	for i, trans := range c.Transitions {
		for sym, target := range trans {
			g.AddEdge(ids[i], ids[target], sym)
		}
	}
	return g.DOT()
}
