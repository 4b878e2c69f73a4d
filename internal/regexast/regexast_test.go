package regexast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Compile_MatchesExpectedLanguage(t *testing.T) {
	testCases := []struct {
		name    string
		node    Node
		input   []string
		accepts bool
	}{
		{
			name:    "char matches itself",
			node:    Char{Symbol: "a"},
			input:   []string{"a"},
			accepts: true,
		},
		{
			name:    "char rejects other symbol",
			node:    Char{Symbol: "a"},
			input:   []string{"b"},
			accepts: false,
		},
		{
			name:    "concat",
			node:    Concat{Left: Char{Symbol: "a"}, Right: Char{Symbol: "b"}},
			input:   []string{"a", "b"},
			accepts: true,
		},
		{
			name:    "alt left branch",
			node:    Alt{Left: Char{Symbol: "a"}, Right: Char{Symbol: "b"}},
			input:   []string{"a"},
			accepts: true,
		},
		{
			name:    "alt right branch",
			node:    Alt{Left: Char{Symbol: "a"}, Right: Char{Symbol: "b"}},
			input:   []string{"b"},
			accepts: true,
		},
		{
			name:    "alt rejects neither",
			node:    Alt{Left: Char{Symbol: "a"}, Right: Char{Symbol: "b"}},
			input:   []string{"c"},
			accepts: false,
		},
		{
			name:    "star accepts empty",
			node:    Star{Expr: Char{Symbol: "a"}},
			input:   []string{},
			accepts: true,
		},
		{
			name:    "star accepts many",
			node:    Star{Expr: Char{Symbol: "a"}},
			input:   []string{"a", "a", "a"},
			accepts: true,
		},
		{
			name:    "charclass matches any member",
			node:    CharClass{Symbols: []string{"a", "b", "c"}},
			input:   []string{"b"},
			accepts: true,
		},
		{
			name:    "plus rejects empty",
			node:    Plus(Char{Symbol: "a"}),
			input:   []string{},
			accepts: false,
		},
		{
			name:    "plus accepts one or more",
			node:    Plus(Char{Symbol: "a"}),
			input:   []string{"a", "a"},
			accepts: true,
		},
		{
			name:    "literal matches its runes",
			node:    Literal("cat"),
			input:   []string{"c", "a", "t"},
			accepts: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			f := Compile(tc.node)
			assert.Equal(tc.accepts, f.Test(tc.input))
		})
	}
}
