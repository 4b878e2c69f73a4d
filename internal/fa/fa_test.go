package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oya-Learning-Notes/Compilers/internal/langutil"
)

func Test_FA_Test_SimpleChain(t *testing.T) {
	testCases := []struct {
		name    string
		input   []string
		accepts bool
	}{
		{name: "exact match", input: []string{"a", "b"}, accepts: true},
		{name: "too short", input: []string{"a"}, accepts: false},
		{name: "wrong symbol", input: []string{"a", "c"}, accepts: false},
		{name: "too long", input: []string{"a", "b", "b"}, accepts: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			f := New()
			s0 := f.AddState(true, false, "")
			s1 := f.AddState(false, false, "")
			s2 := f.AddState(false, true, "accept")
			f.AddTransition(s0, "a", s1)
			f.AddTransition(s1, "b", s2)

			assert.Equal(tc.accepts, f.Test(tc.input))
		})
	}
}

func Test_FA_Validate(t *testing.T) {
	assert := assert.New(t)

	f := New()
	s0 := f.AddState(true, false, "")
	f.AddTransition(s0, "a", "bogus")

	assert.Error(f.Validate())
}

func Test_FA_EpsilonClosure_FollowsChains(t *testing.T) {
	assert := assert.New(t)

	f := New()
	s0 := f.AddState(true, false, "")
	s1 := f.AddState(false, false, "")
	s2 := f.AddState(false, true, "")
	f.AddTransition(s0, Epsilon, s1)
	f.AddTransition(s1, Epsilon, s2)

	closure := f.EpsilonClosure(langutil.NewSet(s0))
	assert.True(closure.Has(s0))
	assert.True(closure.Has(s1))
	assert.True(closure.Has(s2))
}
