package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseText_BuildsAcceptingChainWithEpsilon(t *testing.T) {
	assert := assert.New(t)

	src := `
start:q0
q0 -> q1:a
q1 -> q2
q2 -> q3:b
end:q3
`
	f, err := ParseText(src)
	assert.NoError(err)
	assert.NoError(f.Validate())

	assert.True(f.Test([]string{"a", "b"}))
	assert.False(f.Test([]string{"a"}))
	assert.False(f.Test([]string{"b"}))
}

func Test_ParseText_MultipleSymbolsOnOneEdge(t *testing.T) {
	assert := assert.New(t)

	src := `
start:q0
end:q1
q0 -> q1:a,b,c
`
	f, err := ParseText(src)
	assert.NoError(err)

	assert.True(f.Test([]string{"a"}))
	assert.True(f.Test([]string{"b"}))
	assert.True(f.Test([]string{"c"}))
	assert.False(f.Test([]string{"d"}))
}

func Test_ParseText_CommentsAndBlankLinesIgnored(t *testing.T) {
	assert := assert.New(t)

	src := `
# this is a comment

start:q0
end:q0
`
	f, err := ParseText(src)
	assert.NoError(err)
	assert.True(f.Test([]string{}))
}

func Test_ParseText_MissingArrowErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseText("q0 q1:a\n")
	assert.Error(err)
}
