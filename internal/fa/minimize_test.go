package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Minimize_RejectsNonDFA(t *testing.T) {
	assert := assert.New(t)

	f := New()
	s0 := f.AddState(true, false, "")
	s1 := f.AddState(false, true, "")
	f.AddTransition(s0, Epsilon, s1)

	_, err := f.Minimize()
	assert.Error(err)
}

func Test_Minimize_PreservesLanguage_AndMergesRedundantStates(t *testing.T) {
	assert := assert.New(t)

	// Two separate DFA chains, accepting "ab" and "cb", whose middle and final
	// states can be merged (5 states minimize to 3).
	f := New()
	s0 := f.AddState(true, false, "")
	s1 := f.AddState(false, false, "")
	s2 := f.AddState(false, true, "tok")
	s3 := f.AddState(false, false, "")
	s4 := f.AddState(false, true, "tok")
	f.AddTransition(s0, "a", s1)
	f.AddTransition(s1, "b", s2)
	f.AddTransition(s0, "c", s3)
	f.AddTransition(s3, "b", s4)

	min, err := f.Minimize()
	assert.NoError(err)
	assert.True(min.Test([]string{"a", "b"}))
	assert.True(min.Test([]string{"c", "b"}))
	assert.False(min.Test([]string{"a", "c"}))
	assert.Less(len(min.States()), len(f.States()))
}

func Test_Minimize_KeepsDistinctRoles(t *testing.T) {
	assert := assert.New(t)

	f := New()
	s0 := f.AddState(true, false, "")
	s1 := f.AddState(false, true, "roleA")
	s2 := f.AddState(false, true, "roleB")
	f.AddTransition(s0, "a", s1)
	f.AddTransition(s0, "b", s2)

	min, err := f.Minimize()
	assert.NoError(err)

	roles := map[Role]bool{}
	for _, id := range min.States() {
		st := min.State(id)
		if st.IsEnd {
			roles[st.Role] = true
		}
	}
	assert.Len(roles, 2)
}
