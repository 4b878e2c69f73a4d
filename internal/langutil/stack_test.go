package langutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Stack_PushPopPeek(t *testing.T) {
	assert := assert.New(t)

	s := Stack[int]{}
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(3, s.Peek())
	assert.Equal(3, s.Len())

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
}

func Test_Stack_PopN(t *testing.T) {
	assert := assert.New(t)

	s := Stack[string]{}
	s.Push("a")
	s.Push("b")
	s.Push("c")

	popped := s.PopN(2)
	assert.Equal([]string{"b", "c"}, popped)
	assert.Equal(1, s.Len())
}
