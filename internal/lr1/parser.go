package lr1

import (
	"strconv"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
	"github.com/Oya-Learning-Notes/Compilers/internal/lexer"
	"github.com/Oya-Learning-Notes/Compilers/internal/parsetree"
)

// Parser is a shift/reduce bottom-up parser bound to one table.
type Parser struct {
	table *Table
}

// NewParser binds a parser to an already-built LR table.
func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

// Parse drives the classic state-stack shift-reduce loop (dragon book
// Algorithm 4.44) over tokens, applying each reduction to a parsetree.Tree
// built bottom-up so the caller gets both the accept/reject result and the
// derivation tree in one pass.
func (p *Parser) Parse(tokens []lexer.Token) (*parsetree.Tree, error) {
	ptoks := make([]parsetree.Token, len(tokens))
	for i, t := range tokens {
		ptoks[i] = parsetree.Token{Type: t.Type, Lexeme: t.Lexeme}
	}
	// the tree's root is the original start symbol: accept fires in place of
	// the S' -> S reduction, so no S' node is ever built.
	startRule, _ := p.table.Augmented.Rule(p.table.Augmented.StartSymbol())
	tree := parsetree.NewBottomUp(startRule.Productions[0][0], ptoks)

	states := langutil.Stack[int]{}
	states.Push(0)

	// frontierTop is how many leaves of tree's frontier have been shifted
	// or produced by reduction so far; inputPos is the next token to shift.
	frontierTop := 0
	inputPos := 0

	lookahead := func() string {
		if inputPos >= len(ptoks) {
			return grammar.EndOfInput
		}
		return ptoks[inputPos].Type
	}

	for {
		state := states.Peek()
		la := lookahead()
		action, ok := p.table.Action[state][la]
		if !ok {
			return tree, langerr.NoMove(strconv.Itoa(state), la)
		}

		switch action.Type {
		case ActionShift:
			states.Push(action.Target)
			frontierTop++
			inputPos++

		case ActionReduce:
			k := len(action.Production.Target)
			if frontierTop-k < 0 {
				return tree, langerr.InvalidReduction(action.Production.String(), nil)
			}
			if k > 0 {
				states.PopN(k)
			}

			if _, err := tree.Reduce(frontierTop-k, k, action.Production.Source, action.Production.String()); err != nil {
				return tree, err
			}
			frontierTop = frontierTop - k + 1

			gotoState, ok := p.table.Goto[states.Peek()][action.Production.Source]
			if !ok {
				return tree, langerr.ReductionStateError(strconv.Itoa(states.Peek()), action.Production.Source)
			}
			states.Push(gotoState)

		case ActionAccept:
			if !tree.BottomUpValid(inputPos == len(ptoks)) {
				return tree, langerr.IncompleteParse("accept reached but reduction did not leave a valid single-root tree")
			}
			return tree, nil

		default:
			return tree, langerr.NoMove(strconv.Itoa(state), la)
		}
	}
}
