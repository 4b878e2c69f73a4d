package grammar

// ChomskyType is one of the four levels of the Chomsky hierarchy, ordered
// from strictest (Type3) to loosest (Type0).
type ChomskyType int

const (
	Type3 ChomskyType = iota // regular
	Type2                    // context-free
	Type1                    // context-sensitive
	Type0                    // unrestricted
)

func (t ChomskyType) String() string {
	switch t {
	case Type3:
		return "Type-3 (regular)"
	case Type2:
		return "Type-2 (context-free)"
	case Type1:
		return "Type-1 (context-sensitive)"
	default:
		return "Type-0 (unrestricted)"
	}
}

// looser returns whichever of a, b is less strict (has the higher ChomskyType
// value).
func looser(a, b ChomskyType) ChomskyType {
	if b > a {
		return b
	}
	return a
}

// RegularDirection records whether a Type-3 production is left- or
// right-regular, so that a grammar mixing both directions can be detected
// and dropped to Type-2.
type RegularDirection int

const (
	DirNone RegularDirection = iota
	DirLeft
	DirRight
)

// RawProduction is a general production A1...Am -> B1...Bn, used only for
// Chomsky classification. The core Grammar type always produces
// single-symbol-LHS (context-free) productions; RawProduction exists
// because classification needs to recognize the broader, non-context-free
// shapes (multi-symbol LHS) that the hierarchy itself is defined over.
type RawProduction struct {
	LHS []string
	RHS []string
}

// classification is the per-production result of ClassifyProduction:
// Neutral productions (epsilon RHS, or a single-terminal RHS) contribute no
// constraint to the grammar's overall type.
type classification struct {
	neutral   bool
	chomsky   ChomskyType
	direction RegularDirection
}

// ClassifyProduction classifies a single production in the Chomsky hierarchy:
//   - epsilon RHS or single-terminal RHS: neutral.
//   - |LHS| > 1: Type-1 if |RHS| >= |LHS| and RHS is non-empty, else Type-0.
//   - |LHS| == 1: Type-3 (regular) if RHS is exactly one terminal followed by
//     at most one non-terminal (right-regular: "t" or "tA") or at most one
//     non-terminal followed by one terminal (left-regular: "At"); otherwise
//     Type-2.
func ClassifyProduction(g *Grammar, p RawProduction) (ChomskyType, RegularDirection, bool) {
	m := len(p.LHS)
	n := len(p.RHS)

	if n == 0 || (n == 1 && g.IsTerminal(p.RHS[0])) {
		return 0, DirNone, true
	}

	if m > 1 {
		if n >= m {
			return Type1, DirNone, false
		}
		return Type0, DirNone, false
	}

	// m == 1: check for right-regular ("t" already excluded as neutral, so
	// "tA") or left-regular ("At").
	if n == 2 {
		a, b := p.RHS[0], p.RHS[1]
		if g.IsTerminal(a) && g.IsNonTerminal(b) {
			return Type3, DirRight, false
		}
		if g.IsNonTerminal(a) && g.IsTerminal(b) {
			return Type3, DirLeft, false
		}
	}

	return Type2, DirNone, false
}

// classifyCFGProduction adapts a core-grammar Production (always
// single-symbol LHS) into the RawProduction shape ClassifyProduction
// expects.
func classifyCFGProduction(g *Grammar, p Production) (ChomskyType, RegularDirection, bool) {
	return ClassifyProduction(g, RawProduction{LHS: []string{p.Source}, RHS: p.Target})
}

// ChomskyHierarchy returns the strictest Chomsky type satisfied by every
// production in g: the loosest individual classification among
// non-neutral productions, with one further rule — a grammar whose Type-3
// productions are not uniformly left-regular or uniformly right-regular is
// dropped to Type-2, since mixing directions is not expressible as a single
// one-sided regular grammar.
func (g *Grammar) ChomskyHierarchy() ChomskyType {
	result := Type3
	sawLeft := false
	sawRight := false

	for _, p := range g.Productions() {
		chomsky, dir, neutral := classifyCFGProduction(g, p)
		if neutral {
			continue
		}
		result = looser(result, chomsky)
		if chomsky == Type3 {
			switch dir {
			case DirLeft:
				sawLeft = true
			case DirRight:
				sawRight = true
			}
		}
	}

	if result == Type3 && sawLeft && sawRight {
		result = Type2
	}

	return result
}
