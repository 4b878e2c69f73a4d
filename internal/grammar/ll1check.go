package grammar

// IsLL1 reports whether every pair of distinct alternatives of every
// non-terminal in g has disjoint SELECT sets. This is the same pairwise
// check ll1.BuildTable performs while constructing the parse table, exposed
// standalone so callers can ask the question without attempting (and
// discarding) a full table build.
func (g *Grammar) IsLL1() (bool, error) {
	for _, nt := range g.NonTerminals() {
		rule, _ := g.Rule(nt)
		selects := make([]map[string]bool, len(rule.Productions))
		for i, prod := range rule.Productions {
			set, err := g.Select(nt, prod)
			if err != nil {
				return false, err
			}
			selects[i] = map[string]bool{}
			for t := range set {
				selects[i][t] = true
			}
		}

		for i := 0; i < len(selects); i++ {
			for j := i + 1; j < len(selects); j++ {
				for t := range selects[i] {
					if selects[j][t] {
						return false, nil
					}
				}
			}
		}
	}
	return true, nil
}
