package grammar

import (
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// ParseText parses the plain-text grammar line format: one production per
// line, "LHS -> RHS"; "|" is not supported (each
// alternative is its own line); epsilon is written as an empty RHS or the
// literal "\e"; commas are stripped as whitespace. A symbol beginning with
// an uppercase letter is a non-terminal, everything else is a terminal. The
// grammar's start symbol is the LHS of the first line.
func ParseText(src string) (*Grammar, error) {
	g := New()
	first := true

	for lineNo, rawLine := range strings.Split(src, "\n") {
		line := strings.TrimSpace(rawLine)
		line = strings.ReplaceAll(line, ",", " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, langerr.InvalidInput("grammar text line %d: missing '->': %q", lineNo+1, rawLine)
		}

		lhs := strings.TrimSpace(parts[0])
		if lhs == "" {
			return nil, langerr.InvalidInput("grammar text line %d: empty LHS", lineNo+1)
		}

		rhsFields := strings.Fields(parts[1])
		var rhs []string
		for _, f := range rhsFields {
			if f == `\e` {
				continue
			}
			rhs = append(rhs, f)
		}

		g.AddProduction(lhs, rhs)
		if first {
			g.SetStart(lhs)
			first = false
		}
	}

	return g, nil
}
