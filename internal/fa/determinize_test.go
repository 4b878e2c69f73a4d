package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToDFA_PreservesLanguage(t *testing.T) {
	testCases := []struct {
		name    string
		input   []string
		accepts bool
	}{
		{name: "a", input: []string{"a"}, accepts: true},
		{name: "ab", input: []string{"a", "b"}, accepts: true},
		{name: "b alone", input: []string{"b"}, accepts: false},
		{name: "empty", input: []string{}, accepts: false},
	}

	// Automaton for a(b)?: a chain start -a-> mid -b-> endB, with both mid and
	// endB accepting.
	build := func() *FA {
		f := New()
		start := f.AddState(true, false, "")
		mid := f.AddState(false, true, "")
		endB := f.AddState(false, true, "")
		f.AddTransition(start, "a", mid)
		f.AddTransition(mid, "b", endB)
		return f
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			nfa := build()
			dfa := nfa.ToDFA()

			assert.True(dfa.IsDFA())
			assert.Equal(tc.accepts, dfa.Test(tc.input))
		})
	}
}
