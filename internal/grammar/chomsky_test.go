package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyTestGrammar() *Grammar {
	g := New()
	g.AddProduction("A", []string{"x"})
	g.AddProduction("B", []string{"y"})
	g.AddProduction("C", []string{"z"})
	g.SetStart("A")
	return g
}

func Test_ClassifyProduction(t *testing.T) {
	testCases := []struct {
		name        string
		g           func() *Grammar
		prod        RawProduction
		wantType    ChomskyType
		wantDir     RegularDirection
		wantNeutral bool
	}{
		{
			name:        "epsilon is neutral",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A"}, RHS: nil},
			wantNeutral: true,
		},
		{
			name:        "single terminal is neutral",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A"}, RHS: []string{"a"}},
			wantNeutral: true,
		},
		{
			name:        "right-regular",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A"}, RHS: []string{"a", "B"}},
			wantType:    Type3,
			wantDir:     DirRight,
			wantNeutral: false,
		},
		{
			name:        "left-regular",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A"}, RHS: []string{"B", "a"}},
			wantType:    Type3,
			wantDir:     DirLeft,
			wantNeutral: false,
		},
		{
			name:        "context free",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A"}, RHS: []string{"B", "C"}},
			wantType:    Type2,
			wantDir:     DirNone,
			wantNeutral: false,
		},
		{
			name:        "context sensitive",
			g:           classifyTestGrammar,
			prod:        RawProduction{LHS: []string{"A", "B"}, RHS: []string{"a", "B", "c"}},
			wantType:    Type1,
			wantDir:     DirNone,
			wantNeutral: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gotType, gotDir, neutral := ClassifyProduction(tc.g(), tc.prod)
			assert.Equal(tc.wantNeutral, neutral)
			if !neutral {
				assert.Equal(tc.wantType, gotType)
				assert.Equal(tc.wantDir, gotDir)
			}
		})
	}
}

func Test_ChomskyHierarchy_MixedDirectionsDropToType2(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddProduction("S", []string{"a", "A"})
	g.AddProduction("A", []string{"B", "b"})
	g.AddProduction("B", []string{"c"})
	g.SetStart("S")

	assert.Equal(Type2, g.ChomskyHierarchy())
}

func Test_ChomskyHierarchy_AllRightRegular(t *testing.T) {
	assert := assert.New(t)

	g := New()
	g.AddProduction("S", []string{"a", "S"})
	g.AddProduction("S", []string{"b"})
	g.SetStart("S")

	assert.Equal(Type3, g.ChomskyHierarchy())
}
