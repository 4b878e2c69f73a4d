package grammar

// prefixNode is one node of the branching trie built over a non-terminal's
// alternatives: one child per distinct next symbol, with a sentinel child
// (sentinelEnd) marking "an alternative ends here", so that one alternative
// being a prefix of another remains distinguishable.
const sentinelEnd = "\x00$END$"

type prefixNode struct {
	children map[string]*prefixNode
}

func newPrefixNode() *prefixNode {
	return &prefixNode{children: map[string]*prefixNode{}}
}

func (n *prefixNode) child(sym string) *prefixNode {
	c, ok := n.children[sym]
	if !ok {
		c = newPrefixNode()
		n.children[sym] = c
	}
	return c
}

// buildPrefixTree inserts every alternative of prods into a trie rooted at a
// fresh node, one edge per symbol in the alternative plus a trailing
// sentinelEnd edge.
func buildPrefixTree(prods []Derivation) *prefixNode {
	root := newPrefixNode()
	for _, p := range prods {
		cur := root
		for _, sym := range p {
			cur = cur.child(sym)
		}
		cur.child(sentinelEnd)
	}
	return root
}

// factorFrame is one stack frame of the explicit, non-recursive prefix-tree
// walk: an explicit stack of (tree_node, prefix_so_far, lhs_being_built)
// frames stands in for the call stack a recursive walk would use. Each
// frame names the non-terminal whose productions are being assembled from
// node's subtree.
type factorFrame struct {
	node   *prefixNode
	prefix Derivation
	lhs    NonTerminal
}

// LeftFactor returns a new grammar equivalent to g but with every
// non-terminal's alternatives left-factored (dragon book Algorithm 4.21,
// via a prefix-tree formulation rather than a pairwise longest-common-prefix
// loop): for each non-terminal, any branching point past the root of the
// shared-prefix trie over its alternatives introduces a fresh non-terminal
// carrying the diverging suffixes, and any single-path run (including past
// the sentinel) collapses back into its parent's factor. The root itself
// never spawns a fresh non-terminal: its children are nt's distinct first
// symbols, not a shared prefix, so each stays a direct alternative of nt.
func (g *Grammar) LeftFactor() (*Grammar, error) {
	out := g.Copy()

	for _, nt := range g.NonTerminals() {
		rule, _ := out.Rule(nt)
		tree := buildPrefixTree(rule.Productions)

		// accumulated holds the productions assembled for nt and for every
		// fresh non-terminal spawned while factoring nt, keyed by LHS.
		accumulated := map[NonTerminal][]Derivation{nt: nil}

		var pending []factorFrame
		pending = append(pending, factorFrame{node: tree, prefix: nil, lhs: nt})

		for len(pending) > 0 {
			frame := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			branches := 0
			for sym := range frame.node.children {
				if sym != sentinelEnd {
					branches++
				}
			}
			hasEnd := frame.node.children[sentinelEnd] != nil
			isRoot := frame.node == tree

			switch {
			case branches == 0:
				// pure leaf: this path's accumulated prefix is a complete
				// alternative for frame.lhs.
				accumulated[frame.lhs] = append(accumulated[frame.lhs], frame.prefix)

			case isRoot:
				// the root groups nt's alternatives by their first symbol;
				// its children are distinct starting symbols, not a shared
				// prefix, so each continues directly as its own
				// alternative of frame.lhs (no fresh non-terminal spawned),
				// and a direct epsilon alternative is recorded on frame.lhs
				// as-is rather than deferred to one.
				if hasEnd {
					accumulated[frame.lhs] = append(accumulated[frame.lhs], Derivation{})
				}
				for sym, child := range frame.node.children {
					if sym == sentinelEnd {
						continue
					}
					pending = append(pending, factorFrame{
						node:   child,
						prefix: append(append(Derivation{}, frame.prefix...), sym),
						lhs:    frame.lhs,
					})
				}

			case branches == 1 && !hasEnd:
				// single path with nothing ending here yet: absorb the one
				// child directly into the same frame's prefix rather than
				// spawning a new non-terminal, per "any node with a single
				// path is absorbed into its parent's factor".
				for sym, child := range frame.node.children {
					pending = append(pending, factorFrame{
						node:   child,
						prefix: append(append(Derivation{}, frame.prefix...), sym),
						lhs:    frame.lhs,
					})
				}

			default:
				// branching point (or a path that both ends here and
				// continues): introduce a fresh non-terminal carrying the
				// diverging continuations, and factor frame.lhs down to
				// prefix + freshNonTerminal.
				fresh := out.generateUniqueNameIn(frame.lhs, accumulated)
				accumulated[frame.lhs] = append(accumulated[frame.lhs],
					append(append(Derivation{}, frame.prefix...), fresh))
				accumulated[fresh] = nil
				if hasEnd {
					accumulated[fresh] = append(accumulated[fresh], Derivation{})
				}

				for sym, child := range frame.node.children {
					if sym == sentinelEnd {
						continue
					}
					pending = append(pending, factorFrame{
						node:   child,
						prefix: Derivation{sym},
						lhs:    fresh,
					})
				}
			}
		}

		out.rules[nt].Productions = dedupeDerivations(accumulated[nt])

		// insert freshly spawned non-terminals' rules, in the order they
		// were created, right after nt. Inserting in reverse keeps each
		// insertRuleAfter(nt, ...) call from displacing the ones already
		// placed.
		spawned := out.freshNamesSpawnedFor(nt, accumulated)
		for i := len(spawned) - 1; i >= 0; i-- {
			name := spawned[i]
			out.insertRuleAfter(nt, Rule{NonTerminal: name, Productions: dedupeDerivations(accumulated[name])})
		}
	}

	return out, nil
}

// generateUniqueNameIn is generateUniqueName, but also avoiding collisions
// with non-terminals spawned earlier in this same factoring pass (which
// are not yet inserted into g's rule set).
func (g *Grammar) generateUniqueNameIn(original NonTerminal, accumulated map[NonTerminal][]Derivation) NonTerminal {
	candidate := original
	for {
		candidate = candidate + "'"
		if _, clash := accumulated[candidate]; clash {
			continue
		}
		if !g.IsNonTerminal(candidate) {
			return candidate
		}
	}
}

// freshNamesSpawnedFor returns the non-terminals in accumulated other than
// nt itself, sorted by length so that a chain A' then A'' inserts in the
// order it was created. Every fresh name is nt followed by some number of
// primes, so no two share a length.
func (g *Grammar) freshNamesSpawnedFor(nt NonTerminal, accumulated map[NonTerminal][]Derivation) []NonTerminal {
	var out []NonTerminal
	for name := range accumulated {
		if name != nt {
			out = append(out, name)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && (len(out[j-1]) > len(out[j])); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
