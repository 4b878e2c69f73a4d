package grammar

import (
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

// maxFixedPointIterations bounds every worklist-free fixed-point loop in
// this file. A correctly-implemented FIRST/FOLLOW computation converges in
// at most len(symbols) passes; this cap is many times that, so hitting it
// indicates a bug rather than a large-but-legitimate grammar, and is
// reported as DidNotConverge rather than looping forever.
const maxFixedPointIterations = 10000

const epsilonMarker = ""

// computeFirst computes FIRST[X] for every used symbol X by iterating the
// standard FIRST-set equations to a fixed point. This is an iterative
// formulation; there is no recursive variant anywhere in this package.
func (g *Grammar) computeFirst() (map[string]langutil.Set[string], error) {
	first := map[string]langutil.Set[string]{}

	used := g.UsedSymbols()
	for sym := range used {
		first[sym] = langutil.NewSet[string]()
		if g.IsTerminal(sym) || sym == EndOfInput {
			first[sym].Add(sym)
		}
	}

	changed := true
	iterations := 0
	for changed {
		iterations++
		if iterations > maxFixedPointIterations {
			return nil, langerr.DidNotConverge("FIRST", iterations)
		}
		changed = false

		for _, nt := range g.order {
			for _, prod := range g.rules[nt].Productions {
				before := first[nt].Len()
				hasEps := first[nt].Has(epsilonMarker)

				if prod.IsEpsilon() {
					if !hasEps {
						first[nt].Add(epsilonMarker)
					}
				} else {
					allDeriveEpsilon := true
					for _, sym := range prod {
						for t := range first[sym] {
							if t != epsilonMarker {
								first[nt].Add(t)
							}
						}
						if !first[sym].Has(epsilonMarker) {
							allDeriveEpsilon = false
							break
						}
					}
					if allDeriveEpsilon {
						first[nt].Add(epsilonMarker)
					}
				}

				if first[nt].Len() != before {
					changed = true
				}
			}
		}
	}

	return first, nil
}

// ensureSets lazily computes and caches FIRST and FOLLOW, recomputing if
// the grammar has changed since the last computation.
func (g *Grammar) ensureSets() error {
	if g.firstCache != nil && g.followCache != nil {
		return nil
	}
	first, err := g.computeFirst()
	if err != nil {
		return err
	}
	g.firstCache = first

	follow, err := g.computeFollow(first)
	if err != nil {
		return err
	}
	g.followCache = follow

	return nil
}

// computeFollow computes FOLLOW[A] for every non-terminal A by iterating
// the standard FOLLOW-set equations to a fixed point, given a previously
// computed FIRST table.
func (g *Grammar) computeFollow(first map[string]langutil.Set[string]) (map[string]langutil.Set[string], error) {
	follow := map[string]langutil.Set[string]{}
	for _, nt := range g.order {
		follow[nt] = langutil.NewSet[string]()
	}
	start := g.StartSymbol()
	if start != "" {
		follow[start].Add(EndOfInput)
	}

	firstOfSeq := func(seq []string) langutil.Set[string] {
		out := langutil.NewSet[string]()
		allEps := true
		for _, sym := range seq {
			for t := range first[sym] {
				if t != epsilonMarker {
					out.Add(t)
				}
			}
			if !first[sym].Has(epsilonMarker) {
				allEps = false
				break
			}
		}
		if allEps {
			out.Add(epsilonMarker)
		}
		return out
	}

	changed := true
	iterations := 0
	for changed {
		iterations++
		if iterations > maxFixedPointIterations {
			return nil, langerr.DidNotConverge("FOLLOW", iterations)
		}
		changed = false

		for _, nt := range g.order {
			for _, prod := range g.rules[nt].Productions {
				for i, sym := range prod {
					if !g.IsNonTerminal(sym) {
						continue
					}
					before := follow[sym].Len()

					rest := prod[i+1:]
					restFirst := firstOfSeq(rest)
					for t := range restFirst {
						if t != epsilonMarker {
							follow[sym].Add(t)
						}
					}
					if len(rest) == 0 || restFirst.Has(epsilonMarker) {
						follow[sym].AddAll(follow[nt])
					}

					if follow[sym].Len() != before {
						changed = true
					}
				}
			}
		}
	}

	return follow, nil
}

// First returns FIRST(X) for a single symbol X (terminal or non-terminal).
func (g *Grammar) First(x string) (langutil.Set[string], error) {
	if err := g.ensureSets(); err != nil {
		return nil, err
	}
	return g.firstCache[x].Copy(), nil
}

// FirstOfSequence returns FIRST(alpha) for a sequence of symbols, using the
// same propagate-through-nullable-prefix rule as FIRST of a single
// production's RHS. An empty sequence has FIRST = {ε}.
func (g *Grammar) FirstOfSequence(seq []string) (langutil.Set[string], error) {
	if err := g.ensureSets(); err != nil {
		return nil, err
	}
	out := langutil.NewSet[string]()
	allEps := true
	for _, sym := range seq {
		symFirst, ok := g.firstCache[sym]
		if !ok && !g.IsNonTerminal(sym) {
			// a terminal the grammar never mentions (such as an EndOfInput
			// lookahead) begins only with itself.
			symFirst = langutil.NewSet(sym)
		}
		for t := range symFirst {
			if t != epsilonMarker {
				out.Add(t)
			}
		}
		if !symFirst.Has(epsilonMarker) {
			allEps = false
			break
		}
	}
	if allEps {
		out.Add(epsilonMarker)
	}
	return out, nil
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (g *Grammar) Follow(a NonTerminal) (langutil.Set[string], error) {
	if err := g.ensureSets(); err != nil {
		return nil, err
	}
	return g.followCache[a].Copy(), nil
}

// Select returns SELECT(A -> alpha) = (FIRST(alpha) \ {ε}) ∪ (FOLLOW(A) if ε
// ∈ FIRST(alpha)).
func (g *Grammar) Select(a NonTerminal, alpha Derivation) (langutil.Set[string], error) {
	firstAlpha, err := g.FirstOfSequence(alpha)
	if err != nil {
		return nil, err
	}

	out := langutil.NewSet[string]()
	for t := range firstAlpha {
		if t != epsilonMarker {
			out.Add(t)
		}
	}

	if firstAlpha.Has(epsilonMarker) {
		followA, err := g.Follow(a)
		if err != nil {
			return nil, err
		}
		out.AddAll(followA)
	}

	return out, nil
}
