package langutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Set_UnionIntersectionDifference(t *testing.T) {
	testCases := []struct {
		name      string
		a, b      []string
		union     []string
		intersect []string
		diff      []string
	}{
		{
			name:      "disjoint",
			a:         []string{"x", "y"},
			b:         []string{"z"},
			union:     []string{"x", "y", "z"},
			intersect: []string{},
			diff:      []string{"x", "y"},
		},
		{
			name:      "overlapping",
			a:         []string{"x", "y"},
			b:         []string{"y", "z"},
			union:     []string{"x", "y", "z"},
			intersect: []string{"y"},
			diff:      []string{"x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			a := NewSet(tc.a...)
			b := NewSet(tc.b...)

			assert.ElementsMatch(tc.union, a.Union(b).Elements())
			assert.ElementsMatch(tc.intersect, a.Intersection(b).Elements())
			assert.ElementsMatch(tc.diff, a.Difference(b).Elements())
		})
	}
}

func Test_Set_Equal(t *testing.T) {
	assert := assert.New(t)

	a := NewSet("x", "y")
	b := NewSet("y", "x")
	c := NewSet("y")

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}

func Test_Set_Copy_IsIndependent(t *testing.T) {
	assert := assert.New(t)

	a := NewSet("x")
	b := a.Copy()
	b.Add("y")

	assert.False(a.Has("y"))
	assert.True(b.Has("y"))
}
