// Package regexast implements Component B: a small combinator tree over
// five node kinds, plus an EpsilonNode, that compiles to an NFA fragment via the
// McNaughton-Yamada-Thompson construction (dragon book Algorithm 3.23).
//
// Each node kind's compile method builds one NFA fragment (single-symbol,
// juxtaposition, Kleene star, alternation) and wires fragments together by
// epsilon transitions. Because automata draw state ids from a single
// process-wide counter (see fa.FA.AddState), fragments never need a namespace-prefix
// renaming step when joined; each compile call simply wires fresh states
// directly.
package regexast

import "github.com/Oya-Learning-Notes/Compilers/internal/fa"

// Node is a regex AST node: one of Char, CharClass, Concat, Alt, Star, or
// EpsilonNode. Dynamic dispatch is expressed as a closed interface with a
// single compile method rather than an open class hierarchy, since the
// variants here are exhaustive and each compilation rule is small.
type Node interface {
	// compile appends a fresh fragment to f and returns its single start and
	// single accept state ids.
	compile(f *fa.FA) (start, accept string)
}

// Compile builds a complete NFA for n, rooted at a single start state and a
// single accept state.
func Compile(n Node) *fa.FA {
	f := fa.New()
	start, accept := n.compile(f)
	f.SetStart(start)
	f.SetAccepting(accept, true, "")
	return f
}

// CompileWithRole is Compile, but labels the accepting state with role so
// that a caller merging several compiled fragments into one FA can still
// recover which definition matched.
func CompileWithRole(n Node, role fa.Role) *fa.FA {
	f := fa.New()
	start, accept := n.compile(f)
	f.SetStart(start)
	f.SetAccepting(accept, true, role)
	return f
}

// Char matches exactly one literal input symbol.
type Char struct {
	Symbol string
}

func (c Char) compile(f *fa.FA) (start, accept string) {
	start = f.AddState(false, false, "")
	accept = f.AddState(false, false, "")
	f.AddTransition(start, c.Symbol, accept)
	return start, accept
}

// CharClass matches any one of a set of literal input symbols.
type CharClass struct {
	Symbols []string
}

func (cc CharClass) compile(f *fa.FA) (start, accept string) {
	start = f.AddState(false, false, "")
	accept = f.AddState(false, false, "")
	for _, c := range cc.Symbols {
		f.AddTransition(start, c, accept)
	}
	return start, accept
}

// Concat matches Left followed immediately by Right.
type Concat struct {
	Left, Right Node
}

func (n Concat) compile(f *fa.FA) (start, accept string) {
	lStart, lAccept := n.Left.compile(f)
	rStart, rAccept := n.Right.compile(f)
	f.AddTransition(lAccept, fa.Epsilon, rStart)
	return lStart, rAccept
}

// Alt matches either Left or Right.
type Alt struct {
	Left, Right Node
}

func (n Alt) compile(f *fa.FA) (start, accept string) {
	lStart, lAccept := n.Left.compile(f)
	rStart, rAccept := n.Right.compile(f)

	start = f.AddState(false, false, "")
	accept = f.AddState(false, false, "")

	f.AddTransition(start, fa.Epsilon, lStart)
	f.AddTransition(start, fa.Epsilon, rStart)
	f.AddTransition(lAccept, fa.Epsilon, accept)
	f.AddTransition(rAccept, fa.Epsilon, accept)

	return start, accept
}

// Star matches zero or more repetitions of Expr (Kleene star).
type Star struct {
	Expr Node
}

func (n Star) compile(f *fa.FA) (start, accept string) {
	exprStart, exprAccept := n.Expr.compile(f)

	start = f.AddState(false, false, "")
	accept = f.AddState(false, false, "")

	f.AddTransition(start, fa.Epsilon, accept)
	f.AddTransition(start, fa.Epsilon, exprStart)
	f.AddTransition(exprAccept, fa.Epsilon, start)
	f.AddTransition(exprAccept, fa.Epsilon, accept)

	return start, accept
}

// Plus matches one or more repetitions of Expr. It is not one of the five
// primitive combinators but is a convenience built from Concat+Star
// (e1+ == e1 e1*).
func Plus(expr Node) Node {
	return Concat{Left: expr, Right: Star{Expr: expr}}
}

// Opt matches Expr zero or one times (e1? == e1|ε), built as an Alt between
// expr and an EpsilonNode.
func Opt(expr Node) Node {
	return Alt{Left: expr, Right: EpsilonNode{}}
}

// EpsilonNode matches the empty string.
type EpsilonNode struct{}

func (EpsilonNode) compile(f *fa.FA) (start, accept string) {
	start = f.AddState(false, false, "")
	accept = f.AddState(false, false, "")
	f.AddTransition(start, fa.Epsilon, accept)
	return start, accept
}

// Seq is a convenience for Concat over more than two nodes in sequence.
func Seq(nodes ...Node) Node {
	if len(nodes) == 0 {
		return EpsilonNode{}
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = Concat{Left: out, Right: n}
	}
	return out
}

// OneOf is a convenience for Alt over more than two alternatives.
func OneOf(nodes ...Node) Node {
	if len(nodes) == 0 {
		return EpsilonNode{}
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = Alt{Left: out, Right: n}
	}
	return out
}

// Literal matches a literal string of symbols in sequence, one Char node per
// rune.
func Literal(s string) Node {
	runes := []rune(s)
	nodes := make([]Node, len(runes))
	for i, r := range runes {
		nodes[i] = Char{Symbol: string(r)}
	}
	return Seq(nodes...)
}
