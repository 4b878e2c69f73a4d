// Package lexer implements Component C: a priority-ordered set of token
// definitions, each compiled to a DFA, tokenizing input by longest match
// with priority as the tiebreak.
//
// Matching is driven end to end by this module's own regexast -> fa
// pipeline (Components A and B) rather than the stdlib regexp package,
// since the point of a self-hosted compiler-construction pipeline is for
// the lexer to be built from it.
package lexer

import (
	"sort"

	"github.com/Oya-Learning-Notes/Compilers/internal/fa"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/regexast"
)

// Token is one lexed (type, lexeme) pair, preserving the position it was
// found at in the source for diagnostics.
type Token struct {
	Type    string
	Lexeme  string
	Pos     int
	Line    int
	LinePos int
}

// Definition is one named, prioritized token rule. Lower Priority values
// win ties in longest-match length against higher ones.
type Definition struct {
	Name     string
	Pattern  regexast.Node
	Priority int

	dfa *fa.FA
}

// Lexer holds a priority-ordered list of token definitions, each compiled
// to a DFA at construction time (AddDefinition), and tokenizes input by
// longest-match with priority as the tiebreak.
type Lexer struct {
	defs []*Definition
}

// New returns an empty Lexer.
func New() *Lexer {
	return &Lexer{}
}

// AddDefinition compiles pattern to a DFA (via Thompson construction then
// subset construction) and adds it to the lexer's definition list.
func (l *Lexer) AddDefinition(name string, pattern regexast.Node, priority int) {
	nfa := regexast.Compile(pattern)
	dfa := nfa.ToDFA()
	l.defs = append(l.defs, &Definition{Name: name, Pattern: pattern, Priority: priority, dfa: dfa})
}

// Tokenize scans input left to right. At each position, every definition's
// DFA is reset and fed characters until it gets stuck, recording the
// longest accepting prefix seen (max_match); the definition with the
// longest match wins, ties broken by lower priority. Whitespace or other
// tokens are not filtered here; callers filter by Type as needed.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token

	pos := 0
	line := 1
	linePos := 1

	for pos < len(runes) {
		bestLen := -1
		var bestDef *Definition

		for _, def := range l.defs {
			def.dfa.Reset()
			matched := 0
			for i := pos; i < len(runes); i++ {
				if !def.dfa.MoveNext(string(runes[i])) {
					break
				}
				matched = def.dfa.MaxMatch()
			}
			if matched == 0 {
				continue
			}
			if matched > bestLen || (matched == bestLen && bestDef != nil && def.Priority < bestDef.Priority) {
				bestLen = matched
				bestDef = def
			}
		}

		if bestDef == nil {
			return tokens, langerr.LexError(pos)
		}

		lexeme := string(runes[pos : pos+bestLen])
		tokens = append(tokens, Token{Type: bestDef.Name, Lexeme: lexeme, Pos: pos, Line: line, LinePos: linePos})

		for _, r := range lexeme {
			if r == '\n' {
				line++
				linePos = 1
			} else {
				linePos++
			}
		}
		pos += bestLen
	}

	return tokens, nil
}

// Filter returns the tokens in toks whose Type is not in exclude, preserving
// order. Used by callers to drop whitespace/comment token classes before
// handing the stream to a parser.
func Filter(toks []Token, exclude ...string) []Token {
	skip := map[string]bool{}
	for _, e := range exclude {
		skip[e] = true
	}
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if !skip[t.Type] {
			out = append(out, t)
		}
	}
	return out
}

// byPriority is a convenience for callers who want to inspect a Lexer's
// definitions in priority order (lowest first).
func (l *Lexer) byPriority() []*Definition {
	out := make([]*Definition, len(l.defs))
	copy(out, l.defs)
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// Definitions returns the lexer's token definitions in priority order.
func (l *Lexer) Definitions() []Definition {
	out := make([]Definition, 0, len(l.defs))
	for _, d := range l.byPriority() {
		out = append(out, *d)
	}
	return out
}
