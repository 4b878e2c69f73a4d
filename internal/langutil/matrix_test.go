package langutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Matrix2_SetGet(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix2[string, string, int]()
	m.Set("A", "a", 1)
	m.Set("A", "b", 2)

	v, ok := m.Get("A", "a")
	assert.True(ok)
	assert.Equal(1, v)

	_, ok = m.Get("A", "c")
	assert.False(ok)
}

func Test_Matrix2_Row(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix2[string, string, int]()
	m.Set("A", "a", 1)
	m.Set("A", "b", 2)

	row := m.Row("A")
	assert.Len(row, 2)
	assert.Equal(1, row["a"])
}
