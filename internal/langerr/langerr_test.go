package langerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KindOf_RoundTripsThroughConstructors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind Kind
	}{
		{name: "invalid input", err: InvalidInput("bad: %s", "thing"), kind: KindInvalidInput},
		{name: "no valid derivation", err: NoValidDerivation("A"), kind: KindNoValidDerivation},
		{name: "select conflict", err: SelectSetConflict("A", []string{"a"}, []string{"A -> a"}), kind: KindSelectSetConflict},
		{name: "shift reduce conflict", err: ShiftReduceConflict("0", "a", "A -> a"), kind: KindShiftReduceConflict},
		{name: "lex error", err: LexError(3), kind: KindLexError},
		{name: "not a dfa", err: NotADFA("has epsilon transitions"), kind: KindNotADFA},
		{name: "did not converge", err: DidNotConverge("FIRST", 10000), kind: KindDidNotConverge},
		{name: "entry pattern not match", err: EntryPatternNotMatch("S -> a b"), kind: KindEntryPatternNotMatch},
		{name: "no move", err: NoMove("0", "a"), kind: KindNoMove},
		{name: "incomplete parse", err: IncompleteParse("ran out of input"), kind: KindIncompleteParse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, ok := KindOf(tc.err)
			assert.True(ok)
			assert.Equal(tc.kind, got)
			assert.True(Is(tc.err, tc.kind))
		})
	}
}

func Test_KindOf_FalseForForeignError(t *testing.T) {
	assert := assert.New(t)

	_, ok := KindOf(errors.New("some other package's error"))
	assert.False(ok)
}
