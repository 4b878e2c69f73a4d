// Package parsetree implements Component H: the shared parse-tree structure
// used by both the top-down (LL(1)) and bottom-up (LR(1)) drivers.
//
// The tree keeps a root/Children node shape with an ASCII-art String()
// rendering, generalized into a dual entries/leaves frontier view so that
// both derive (top-down) and reduce (bottom-up) are tree operations rather
// than driver-local bookkeeping threaded through separate parallel stacks.
package parsetree

import (
	"fmt"
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// Token is the minimal view of a lexed token a leaf needs to carry.
type Token struct {
	Type   string
	Lexeme string
}

// Node is one node of a parse tree: either a leaf bound to a symbol (and,
// if terminal, a source token), or an internal node produced by a
// derivation or reduction.
type Node struct {
	Symbol     string
	Terminal   bool
	Token      *Token
	Production string // textual production applied here, if any
	Children   []*Node
}

// Tree is the dual entries/leaves structure: entries are the current roots
// of the forest under construction, leaves are the current frontier in
// left-to-right order. The frontier is always a contiguous, ordered slice
// referencing nodes reachable from entries; derive replaces a single leaf,
// reduce collapses a contiguous span of leaves into one new leaf, and that
// contiguity is a strict invariant of every mutation on this structure.
type Tree struct {
	StartSymbol string
	Entries     []*Node
	Leaves      []*Node
}

// NewTopDown starts a tree for LL(1) parsing: both entries and leaves are a
// single node labeled with the grammar's start symbol.
func NewTopDown(startSymbol string) *Tree {
	root := &Node{Symbol: startSymbol}
	return &Tree{StartSymbol: startSymbol, Entries: []*Node{root}, Leaves: []*Node{root}}
}

// NewBottomUp starts a tree for LR(1) parsing: both entries and leaves are
// one terminal leaf per input token, in input order.
func NewBottomUp(startSymbol string, tokens []Token) *Tree {
	leaves := make([]*Node, len(tokens))
	for i, t := range tokens {
		tok := t
		leaves[i] = &Node{Symbol: t.Type, Terminal: true, Token: &tok}
	}
	entries := make([]*Node, len(leaves))
	copy(entries, leaves)
	return &Tree{StartSymbol: startSymbol, Entries: entries, Leaves: leaves}
}

// Derive replaces the leaf at frontierIndex with one new leaf per symbol of
// target (or a single epsilon child, if target is empty), recording
// production on the replaced node. isTerminal classifies each symbol of
// target so the new leaves carry the right Terminal flag; it is never
// consulted for the epsilon placeholder. Used by the LL(1) driver.
func (t *Tree) Derive(frontierIndex int, production string, target []string, isTerminal func(string) bool) error {
	if frontierIndex < 0 || frontierIndex >= len(t.Leaves) {
		return langerr.InvalidInput("derive: frontier index %d out of range [0,%d)", frontierIndex, len(t.Leaves))
	}

	node := t.Leaves[frontierIndex]
	node.Production = production

	var children []*Node
	if len(target) == 0 {
		children = []*Node{{Symbol: "", Terminal: true}}
	} else {
		children = make([]*Node, len(target))
		for i, sym := range target {
			children[i] = &Node{Symbol: sym, Terminal: isTerminal(sym)}
		}
	}
	node.Children = children

	newLeaves := make([]*Node, 0, len(t.Leaves)-1+len(children))
	newLeaves = append(newLeaves, t.Leaves[:frontierIndex]...)
	newLeaves = append(newLeaves, children...)
	newLeaves = append(newLeaves, t.Leaves[frontierIndex+1:]...)
	t.Leaves = newLeaves

	if len(t.Entries) == 1 && t.Entries[0] == node {
		// entries already points at node itself; nothing to update, since
		// node gained children in place rather than being replaced.
	}

	return nil
}

// MarkMatched marks the terminal leaf at frontierIndex as having matched
// its corresponding input token, used by the LL(1) driver to track which
// prefix of the frontier has already been consumed without needing a
// separate cursor structure in this package.
func (t *Tree) MarkMatched(frontierIndex int, tok Token) error {
	if frontierIndex < 0 || frontierIndex >= len(t.Leaves) {
		return langerr.InvalidInput("mark matched: frontier index %d out of range", frontierIndex)
	}
	matched := tok
	t.Leaves[frontierIndex].Token = &matched
	t.Leaves[frontierIndex].Terminal = true
	return nil
}

// Reduce wraps the k consecutive leaves starting at frontierIndex under a
// new node labeled lhs, recording production on it; those k leaves become
// its ordered children and are replaced in the frontier by the single new
// node. Used by the LR(1) driver.
func (t *Tree) Reduce(frontierIndex, k int, lhs string, production string) (*Node, error) {
	if frontierIndex < 0 || frontierIndex+k > len(t.Leaves) {
		return nil, langerr.InvalidInput("reduce: span [%d,%d) out of range [0,%d)", frontierIndex, frontierIndex+k, len(t.Leaves))
	}

	children := make([]*Node, k)
	copy(children, t.Leaves[frontierIndex:frontierIndex+k])
	if k == 0 {
		children = []*Node{{Symbol: "", Terminal: true}}
	}

	newNode := &Node{Symbol: lhs, Production: production, Children: children}

	newLeaves := make([]*Node, 0, len(t.Leaves)-k+1)
	newLeaves = append(newLeaves, t.Leaves[:frontierIndex]...)
	newLeaves = append(newLeaves, newNode)
	newLeaves = append(newLeaves, t.Leaves[frontierIndex+k:]...)
	t.Leaves = newLeaves

	newEntries := replaceInEntries(t.Entries, children, newNode)
	t.Entries = newEntries

	return newNode, nil
}

// replaceInEntries replaces, within entries, every occurrence of the nodes
// in reduced with newNode, collapsing consecutive reduced members into the
// single replacement the way Reduce collapses them in the leaf frontier.
func replaceInEntries(entries []*Node, reduced []*Node, newNode *Node) []*Node {
	reducedSet := map[*Node]bool{}
	for _, n := range reduced {
		reducedSet[n] = true
	}

	var out []*Node
	inserted := false
	for _, e := range entries {
		if reducedSet[e] {
			if !inserted {
				out = append(out, newNode)
				inserted = true
			}
			continue
		}
		out = append(out, e)
	}
	if !inserted {
		out = append(out, newNode)
	}
	return out
}

// TopDownValid reports whether the tree satisfies top-down validity:
// exactly one entry remains, and every non-epsilon frontier element is a
// terminal whose recorded token type matches the corresponding input
// token (tracked via MarkMatched). Epsilon placeholder leaves (Symbol == "")
// are excluded before comparing against input, since they never consume a
// token and so have no corresponding entry in input.
func (t *Tree) TopDownValid(input []Token) bool {
	if len(t.Entries) != 1 {
		return false
	}
	if t.Entries[0].Symbol != t.StartSymbol {
		return false
	}

	matched := make([]*Node, 0, len(t.Leaves))
	for _, leaf := range t.Leaves {
		if leaf.Symbol == "" {
			continue
		}
		matched = append(matched, leaf)
	}

	if len(matched) != len(input) {
		return false
	}
	for i, leaf := range matched {
		if !leaf.Terminal {
			return false
		}
		if leaf.Token == nil || leaf.Token.Type != input[i].Type {
			return false
		}
	}
	return true
}

// BottomUpValid reports whether the frontier has collapsed to a single node
// equal to the start symbol and all input has been consumed.
func (t *Tree) BottomUpValid(allInputConsumed bool) bool {
	return allInputConsumed && len(t.Leaves) == 1 && t.Leaves[0].Symbol == t.StartSymbol && len(t.Entries) == 1
}

// String renders the tree rooted at each entry as an ASCII-art derivation,
// using a recursive prefix-drawing style for branch/leaf connectors.
func (t *Tree) String() string {
	var sb strings.Builder
	for i, e := range t.Entries {
		sb.WriteString(e.leveledStr("", ""))
		if i+1 < len(t.Entries) {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func (n *Node) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if n.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %q)", n.Symbol))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", n.Symbol))
	}

	for i, c := range n.Children {
		sb.WriteRune('\n')
		var leveledFirst, leveledCont string
		if i+1 < len(n.Children) {
			leveledFirst = contPrefix + "  |---: "
			leveledCont = contPrefix + "  |     "
		} else {
			leveledFirst = contPrefix + `  \---: `
			leveledCont = contPrefix + "        "
		}
		sb.WriteString(c.leveledStr(leveledFirst, leveledCont))
	}
	return sb.String()
}

// Copy returns a deep copy of n.
func (n *Node) Copy() *Node {
	out := &Node{Symbol: n.Symbol, Terminal: n.Terminal, Production: n.Production}
	if n.Token != nil {
		tok := *n.Token
		out.Token = &tok
	}
	out.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		out.Children[i] = c.Copy()
	}
	return out
}
