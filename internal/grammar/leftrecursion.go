package grammar

import (
	"fmt"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// maxSubstitutionRounds bounds the substitution loop in EliminateLeftRecursion.
// A correct run of Paull's algorithm substitutes each non-terminal's leading
// occurrences at most once per earlier non-terminal, so this is a generous
// multiple of that; exceeding it means the loop failed to reach a fixed
// point and is reported as DidNotConverge rather than spinning forever.
const maxSubstitutionRounds = 10000

// EliminateLeftRecursion returns a new grammar equivalent to g but with all
// direct and indirect left recursion removed, using Paull's algorithm
// (dragon book Algorithm 4.19): order the non-terminals, and for each Ai in
// turn, substitute any production Ai -> Aj·gamma with j < i by Aj's current
// alternatives, then split Ai's own productions into those that are
// immediately left-recursive on Ai and those that are not, folding the
// recursive ones into a fresh non-terminal.
func (g *Grammar) EliminateLeftRecursion() (*Grammar, error) {
	out := g.Copy()
	order := out.NonTerminals()

	rounds := 0
	for i, ai := range order {
		for j := 0; j < i; j++ {
			aj := order[j]
			rounds++
			if rounds > maxSubstitutionRounds {
				return nil, langerr.DidNotConverge("left-recursion elimination (substitution)", rounds)
			}

			rule, _ := out.Rule(ai)
			var rewritten []Derivation
			changed := false
			for _, prod := range rule.Productions {
				if len(prod) > 0 && prod[0] == aj {
					changed = true
					ajRule, _ := out.Rule(aj)
					for _, ajAlt := range ajRule.Productions {
						newProd := append(append(Derivation{}, ajAlt...), prod[1:]...)
						rewritten = append(rewritten, newProd)
					}
				} else {
					rewritten = append(rewritten, prod)
				}
			}
			if changed {
				out.rules[ai].Productions = dedupeDerivations(rewritten)
			}
		}

		if err := out.eliminateImmediateLeftRecursion(ai); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func dedupeDerivations(in []Derivation) []Derivation {
	var out []Derivation
	for _, d := range in {
		dup := false
		for _, o := range out {
			if d.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}

// eliminateImmediateLeftRecursion removes direct left recursion on ai,
// splitting its productions into recursive alphas (Ai -> Ai alpha) and
// non-recursive betas (Ai -> beta), and rewriting them per Algorithm 4.19 if
// any alphas exist.
func (g *Grammar) eliminateImmediateLeftRecursion(ai NonTerminal) error {
	rule, ok := g.Rule(ai)
	if !ok {
		return nil
	}

	var alphas, betas []Derivation
	for _, prod := range rule.Productions {
		if len(prod) > 0 && prod[0] == ai {
			alphas = append(alphas, prod[1:])
		} else {
			betas = append(betas, prod)
		}
	}

	if len(alphas) == 0 {
		return nil
	}

	aiPrime := g.generateUniqueName(ai)

	var newAiProds []Derivation
	if len(betas) == 0 {
		// degenerate case: Ai only has recursive alternatives. Ai' alone
		// carries the (now directly-recursive-on-Ai') repetition, and Ai
		// reduces to just invoking it once.
		newAiProds = append(newAiProds, Derivation{aiPrime})
	} else {
		for _, beta := range betas {
			newAiProds = append(newAiProds, append(append(Derivation{}, beta...), aiPrime))
		}
	}
	g.rules[ai].Productions = newAiProds

	var aiPrimeProds []Derivation
	for _, alpha := range alphas {
		aiPrimeProds = append(aiPrimeProds, append(append(Derivation{}, alpha...), aiPrime))
	}
	aiPrimeProds = append(aiPrimeProds, Derivation{})

	g.insertRuleAfter(ai, Rule{NonTerminal: aiPrime, Productions: aiPrimeProds})

	return nil
}

// generateUniqueName returns a fresh non-terminal name derived from
// original by appending "'" until the name is not already in use, following
// the dragon book's conventional prime notation for split non-terminals.
func (g *Grammar) generateUniqueName(original NonTerminal) NonTerminal {
	candidate := original
	for {
		candidate = fmt.Sprintf("%s'", candidate)
		if !g.IsNonTerminal(candidate) {
			return candidate
		}
	}
}

// insertRuleAfter inserts r into g's rule order immediately after
// nonTerminal, so that the fresh non-terminal a rewrite introduces appears
// next to the rule it was derived from rather than at the end of the
// grammar.
func (g *Grammar) insertRuleAfter(after NonTerminal, r Rule) {
	idx := -1
	for i, nt := range g.order {
		if nt == after {
			idx = i
			break
		}
	}

	newOrder := make([]NonTerminal, 0, len(g.order)+1)
	newOrder = append(newOrder, g.order[:idx+1]...)
	newOrder = append(newOrder, r.NonTerminal)
	newOrder = append(newOrder, g.order[idx+1:]...)
	g.order = newOrder

	copied := r.Copy()
	g.rules[r.NonTerminal] = &copied
	g.invalidateCaches()
}

// HasLeftRecursion returns whether any non-terminal in g has a direct or
// indirect left-recursive derivation: Ai =>+ Ai alpha for some alpha.
func (g *Grammar) HasLeftRecursion() bool {
	for _, nt := range g.order {
		visited := map[string]bool{}
		if g.derivesLeftInto(nt, nt, visited) {
			return true
		}
	}
	return false
}

// derivesLeftInto returns whether target can appear as the leading symbol
// of some derivation reachable from nt by repeatedly expanding the leading
// non-terminal, used to detect indirect left recursion.
func (g *Grammar) derivesLeftInto(nt, target NonTerminal, visited map[string]bool) bool {
	if visited[nt] {
		return false
	}
	visited[nt] = true

	rule, ok := g.Rule(nt)
	if !ok {
		return false
	}
	for _, prod := range rule.Productions {
		if len(prod) == 0 {
			continue
		}
		lead := prod[0]
		if lead == target {
			return true
		}
		if g.IsNonTerminal(lead) && g.derivesLeftInto(lead, target, visited) {
			return true
		}
	}
	return false
}
