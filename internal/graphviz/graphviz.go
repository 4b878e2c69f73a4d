// Package graphviz renders the toolkit's structures (finite automata,
// canonical LR(1) item-set automata, left-factoring prefix trees, and parse
// trees) as Graphviz DOT source.
//
// Every structural type in this module gets its own dedicated
// diagnostic-rendering method; this package gives the same treatment to DOT
// output, following the shape of this module's own String() renderers
// (internal/fa, internal/parsetree). Node identifiers are minted with
// github.com/google/uuid so that two distinct diagrams built in the same
// process never collide if merged into one DOT file.
package graphviz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Node is one Graphviz node: a stable internal ID, a display label, and an
// optional shape override (box, doublecircle, etc).
type Node struct {
	ID    string
	Label string
	Shape string
}

// Edge is one directed Graphviz edge, optionally labeled (e.g. with a
// transition symbol).
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is a directed graph ready to render as DOT source.
type Graph struct {
	Name  string
	nodes []Node
	edges []Edge
	byKey map[string]string // caller key -> minted node ID, for AddNode dedup
}

// New returns an empty graph named name (used as the DOT "digraph NAME {").
func New(name string) *Graph {
	return &Graph{Name: name, byKey: map[string]string{}}
}

// AddNode adds a node for key (an arbitrary caller-chosen identity, e.g. an
// FA state id or item-set index) if not already present, returning its
// minted Graphviz node ID either way.
func (g *Graph) AddNode(key, label, shape string) string {
	if id, ok := g.byKey[key]; ok {
		return id
	}
	id := "n_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.byKey[key] = id
	g.nodes = append(g.nodes, Node{ID: id, Label: label, Shape: shape})
	return id
}

// AddEdge adds a directed edge between two already-minted node IDs.
func (g *Graph) AddEdge(fromID, toID, label string) {
	g.edges = append(g.edges, Edge{From: fromID, To: toID, Label: label})
}

// DOT renders the graph as Graphviz DOT source.
func (g *Graph) DOT() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", quoteIdent(g.Name))
	fmt.Fprintf(&sb, "  rankdir=LR;\n")

	nodes := append([]Node{}, g.nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	for _, n := range nodes {
		shape := n.Shape
		if shape == "" {
			shape = "circle"
		}
		fmt.Fprintf(&sb, "  %s [label=%s, shape=%s];\n", n.ID, quoteLabel(n.Label), shape)
	}

	for _, e := range g.edges {
		if e.Label == "" {
			fmt.Fprintf(&sb, "  %s -> %s;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&sb, "  %s -> %s [label=%s];\n", e.From, e.To, quoteLabel(e.Label))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func quoteLabel(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}

func quoteIdent(s string) string {
	if s == "" {
		return "G"
	}
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
