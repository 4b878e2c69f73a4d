package fa

import (
	"sort"

	"github.com/Oya-Learning-Notes/Compilers/internal/graphviz"
)

// DOT renders the FA as Graphviz source: one node per state (accepting
// states drawn as doublecircle), one edge per transition, epsilon edges
// labeled "ε".
func (f *FA) DOT(name string) string {
	g := graphviz.New(name)

	ids := f.States()
	sort.Strings(ids)
	for _, id := range ids {
		s := f.states[id]
		shape := "circle"
		if s.IsEnd {
			shape = "doublecircle"
		}
		label := id
		if s.Role != "" {
			label = id + "(" + string(s.Role) + ")"
		}
		g.AddNode(id, label, shape)
	}

	for _, id := range ids {
		s := f.states[id]
		for _, t := range s.transitions {
			label := t.input
			if label == Epsilon {
				label = "ε"
			}
			g.AddEdge(id, t.target, label)
		}
	}

	return g.DOT()
}
