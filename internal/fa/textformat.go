package fa

import (
	"strings"

	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
)

// ParseText parses the FA diagnostic text format: one line per
// edge, "FROM -> TO[:sym[,sym...]]" (a missing symbol list means an epsilon
// edge), plus "start:ID" and "end:ID" lines naming the start state and an
// accepting state. State names are external labels, minted into fresh
// internal ids on first reference.
func ParseText(src string) (*FA, error) {
	f := New()
	external := map[string]string{}

	resolve := func(name string) string {
		if id, ok := external[name]; ok {
			return id
		}
		id := f.AddState(false, false, "")
		external[name] = id
		return id
	}

	for lineNo, rawLine := range strings.Split(src, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "start:"); ok {
			f.SetStart(resolve(strings.TrimSpace(rest)))
			continue
		}
		if rest, ok := strings.CutPrefix(line, "end:"); ok {
			f.SetAccepting(resolve(strings.TrimSpace(rest)), true, "")
			continue
		}

		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, langerr.InvalidInput("FA text line %d: missing '->': %q", lineNo+1, rawLine)
		}
		from := resolve(strings.TrimSpace(parts[0]))

		rhs := strings.TrimSpace(parts[1])
		toName, symPart, hasSyms := strings.Cut(rhs, ":")
		to := resolve(strings.TrimSpace(toName))

		if !hasSyms {
			f.AddTransition(from, Epsilon, to)
			continue
		}
		for _, sym := range strings.Split(symPart, ",") {
			sym = strings.TrimSpace(sym)
			if sym == "" {
				continue
			}
			f.AddTransition(from, sym, to)
		}
	}

	return f, nil
}
