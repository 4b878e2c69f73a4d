// Package langerr defines the typed error kinds raised by the toolkit's
// analysis and driver code. Every kind shares one private struct
// implementing error, built by an exported constructor per kind. The
// details (symbols, positions, productions) are carried in the technical
// Error() string; the only structured field a caller can inspect is the
// Kind, via KindOf or Is.
package langerr

import "fmt"

// Kind identifies which of the error families described in the error
// handling design an error belongs to, so that callers can switch on it
// without a type assertion per variant.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindNoValidDerivation
	KindEntryPatternNotMatch
	KindSelectSetConflict
	KindShiftReduceConflict
	KindReduceReduceConflict
	KindTokenMismatch
	KindNoMove
	KindInvalidReduction
	KindReductionStateError
	KindShiftStateError
	KindLexError
	KindNotADFA
	KindDidNotConverge
	KindIncompleteParse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindNoValidDerivation:
		return "NoValidDerivation"
	case KindEntryPatternNotMatch:
		return "EntryPatternNotMatch"
	case KindSelectSetConflict:
		return "SelectSetConflict"
	case KindShiftReduceConflict:
		return "ShiftReduceConflict"
	case KindReduceReduceConflict:
		return "ReduceReduceConflict"
	case KindTokenMismatch:
		return "TokenMismatch"
	case KindNoMove:
		return "NoMove"
	case KindInvalidReduction:
		return "InvalidReduction"
	case KindReductionStateError:
		return "ReductionStateError"
	case KindShiftStateError:
		return "ShiftStateError"
	case KindLexError:
		return "LexError"
	case KindNotADFA:
		return "NotADFA"
	case KindDidNotConverge:
		return "DidNotConverge"
	case KindIncompleteParse:
		return "IncompleteParse"
	default:
		return "Unknown"
	}
}

// toolkitError is the single concrete error type behind every constructor in
// this package. msg is the technical Error() text; wrap is an optionally
// wrapped cause.
type toolkitError struct {
	kind Kind
	msg  string
	wrap error
}

func (e *toolkitError) Error() string {
	return e.msg
}

func (e *toolkitError) Unwrap() error {
	return e.wrap
}

// KindOf returns the Kind of err if it is one of this package's error types,
// and ok=false otherwise.
func KindOf(err error) (k Kind, ok bool) {
	te, isToolkit := err.(*toolkitError)
	if !isToolkit {
		return 0, false
	}
	return te.kind, true
}

// Is reports whether err is a toolkit error of exactly kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// InvalidInput reports malformed regex input, a malformed grammar line, an
// empty production LHS, or a non-terminal missing on the LHS of a
// context-sensitive rule.
func InvalidInput(format string, a ...interface{}) error {
	return &toolkitError{kind: KindInvalidInput, msg: fmt.Sprintf(format, a...)}
}

// NoValidDerivation reports that non-terminal A appears in some production
// but has no production of its own.
func NoValidDerivation(nonTerminal string) error {
	return &toolkitError{
		kind: KindNoValidDerivation,
		msg:  fmt.Sprintf("non-terminal %q is used but has no production", nonTerminal),
	}
}

// EntryPatternNotMatch reports that the supplied LR entry production was not
// of the shape lr1.ValidateEntry accepts, S' -> S: one production with a
// single-symbol target. An entry written as S' -> S $ does not match.
func EntryPatternNotMatch(got string) error {
	return &toolkitError{
		kind: KindEntryPatternNotMatch,
		msg:  fmt.Sprintf("entry production must be of the form S' -> S; got %q", got),
	}
}

// SelectSetConflict reports that two or more productions of non-terminal A
// share at least one terminal in their SELECT sets, so an LL(1) table cannot
// be built for A.
func SelectSetConflict(nonTerminal string, sharedTerminals []string, productions []string) error {
	return &toolkitError{
		kind: KindSelectSetConflict,
		msg: fmt.Sprintf("SELECT set conflict on %q: productions %v all select on %v",
			nonTerminal, productions, sharedTerminals),
	}
}

// ShiftReduceConflict reports that an LR item-set state has both a shift and
// a reduce action defined for the same lookahead terminal.
func ShiftReduceConflict(state string, lookahead string, reduceProduction string) error {
	return &toolkitError{
		kind: KindShiftReduceConflict,
		msg:  fmt.Sprintf("shift/reduce conflict in state %s on %q (reduce by %s)", state, lookahead, reduceProduction),
	}
}

// ReduceReduceConflict reports that an LR item-set state has two competing
// reduce actions for the same lookahead terminal.
func ReduceReduceConflict(state string, lookahead string, productionA, productionB string) error {
	return &toolkitError{
		kind: KindReduceReduceConflict,
		msg:  fmt.Sprintf("reduce/reduce conflict in state %s on %q: %s vs %s", state, lookahead, productionA, productionB),
	}
}

// TokenMismatch reports that the LL(1) driver found a terminal leaf in the
// frontier that did not match the token at the given input index.
func TokenMismatch(index int, expected, got string) error {
	return &toolkitError{
		kind: KindTokenMismatch,
		msg:  fmt.Sprintf("token mismatch at input index %d: expected %s, got %s", index, expected, got),
	}
}

// NoMove reports that the LL(1) table has no entry for (state, lookahead), or
// that the LR driver has no applicable action for the same pair.
func NoMove(state string, lookahead string) error {
	return &toolkitError{
		kind: KindNoMove,
		msg:  fmt.Sprintf("no move defined for state %s on lookahead %q", state, lookahead),
	}
}

// InvalidReduction reports that the symbols popped off the LR stack during a
// reduction did not match the production's RHS, a construction bug rather
// than a user-input error.
func InvalidReduction(production string, gotSymbols []string) error {
	return &toolkitError{
		kind: KindInvalidReduction,
		msg:  fmt.Sprintf("invalid reduction: popped symbols %v do not match RHS of %s", gotSymbols, production),
	}
}

// ReductionStateError reports that GOTO(state, A) was undefined immediately
// after a reduction to A, a construction bug.
func ReductionStateError(state string, nonTerminal string) error {
	return &toolkitError{
		kind: KindReductionStateError,
		msg:  fmt.Sprintf("no GOTO defined from state %s on %q after reduction", state, nonTerminal),
	}
}

// ShiftStateError reports that GOTO(state, terminal) was undefined during an
// attempted shift.
func ShiftStateError(state string, terminal string) error {
	return &toolkitError{
		kind: KindShiftStateError,
		msg:  fmt.Sprintf("no transition defined from state %s on terminal %q", state, terminal),
	}
}

// LexError reports that no token definition matched at the given input
// position.
func LexError(position int) error {
	return &toolkitError{
		kind: KindLexError,
		msg:  fmt.Sprintf("no token definition matches input at position %d", position),
	}
}

// NotADFA reports that an operation requiring a DFA (minimization, in
// particular) was applied to an automaton still containing epsilon
// transitions or non-deterministic transitions.
func NotADFA(reason string) error {
	return &toolkitError{
		kind: KindNotADFA,
		msg:  fmt.Sprintf("automaton is not a DFA: %s", reason),
	}
}

// DidNotConverge is the safety-net fatal raised when a bounded fixed-point or
// worklist computation exceeds its iteration cap, guarding against silent
// bugs in grammar transforms or fixed-point computations.
func DidNotConverge(phase string, iterations int) error {
	return &toolkitError{
		kind: KindDidNotConverge,
		msg:  fmt.Sprintf("%s did not converge after %d iterations", phase, iterations),
	}
}

// IncompleteParse reports that a top-down derivation or bottom-up reduction
// ran out of moves (the frontier was exhausted, or the accept action fired)
// without consuming all of the input or without leaving the tree in a valid
// final shape.
func IncompleteParse(reason string) error {
	return &toolkitError{
		kind: KindIncompleteParse,
		msg:  fmt.Sprintf("parse did not complete: %s", reason),
	}
}
