/*
Toolkit drives the compiler-construction library end to end from the
command line: load a grammar in the plain-text line format, run one of the
analysis or table-construction passes over it, and print the result.

Usage:

	toolkit -g FILE -a ANALYSIS [-G]

The flags are:

	-g, --grammar FILE
		Path to a grammar in the plain-text "LHS -> RHS" line format.

	-a, --analysis NAME
		Which analysis to run: first, follow, chomsky, leftrecursion,
		leftfactor, ll1, lr1, lalr1, slr1.

	-G, --graphviz
		For analyses that produce a structure with a diagram (lr1, the
		left-factored prefix tree), print Graphviz DOT source instead of the
		textual report.

	-v, --version
		Print the toolkit version and exit.

Exit codes: 0 success; 1 invalid grammar/regex input; 2 ambiguity or
conflict detected (SELECT-set or shift/reduce/reduce/reduce conflicts); 3
lex/parse failure on input.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/Oya-Learning-Notes/Compilers/internal/grammar"
	"github.com/Oya-Learning-Notes/Compilers/internal/langerr"
	"github.com/Oya-Learning-Notes/Compilers/internal/ll1"
	"github.com/Oya-Learning-Notes/Compilers/internal/lr1"
	"github.com/Oya-Learning-Notes/Compilers/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInvalidInput indicates a malformed grammar or regex input.
	ExitInvalidInput

	// ExitConflict indicates an ambiguity or table conflict was detected.
	ExitConflict

	// ExitParseFailure indicates a lex/parse failure on the sample input.
	ExitParseFailure
)

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Print the toolkit version and exit")
	grammarFile  = pflag.StringP("grammar", "g", "", "Path to a plain-text grammar file")
	analysisName = pflag.StringP("analysis", "a", "first", "Analysis to run: first, follow, chomsky, leftrecursion, leftfactor, ll1, lr1, lalr1, slr1")
	useGraphviz  = pflag.BoolP("graphviz", "G", false, "Print Graphviz DOT source where applicable")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *grammarFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --grammar is required")
		returnCode = ExitInvalidInput
		return
	}

	src, err := os.ReadFile(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInvalidInput
		return
	}

	g, err := grammar.ParseText(string(src))
	if err != nil {
		reportError(err)
		return
	}
	if err := g.Validate(); err != nil {
		reportError(err)
		return
	}

	fmt.Printf("loaded grammar: %s non-terminals, %s productions\n",
		humanize.Comma(int64(len(g.NonTerminals()))),
		humanize.Comma(int64(len(g.Productions()))))

	if err := runAnalysis(g, *analysisName, *useGraphviz); err != nil {
		reportError(err)
		return
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	kind, ok := langerr.KindOf(err)
	if !ok {
		returnCode = ExitInvalidInput
		return
	}
	switch kind {
	case langerr.KindSelectSetConflict, langerr.KindShiftReduceConflict, langerr.KindReduceReduceConflict:
		returnCode = ExitConflict
	case langerr.KindTokenMismatch, langerr.KindNoMove, langerr.KindLexError, langerr.KindInvalidReduction, langerr.KindIncompleteParse:
		returnCode = ExitParseFailure
	default:
		returnCode = ExitInvalidInput
	}
}

func runAnalysis(g *grammar.Grammar, name string, asGraphviz bool) error {
	switch name {
	case "first":
		for _, nt := range g.NonTerminals() {
			set, err := g.First(nt)
			if err != nil {
				return err
			}
			fmt.Printf("FIRST(%s) = %s\n", nt, set.StringOrdered())
		}

	case "follow":
		for _, nt := range g.NonTerminals() {
			set, err := g.Follow(nt)
			if err != nil {
				return err
			}
			fmt.Printf("FOLLOW(%s) = %s\n", nt, set.StringOrdered())
		}

	case "chomsky":
		fmt.Printf("grammar is %s\n", g.ChomskyHierarchy())

	case "leftrecursion":
		out, err := g.EliminateLeftRecursion()
		if err != nil {
			return err
		}
		fmt.Print(out.String())

	case "leftfactor":
		out, err := g.LeftFactor()
		if err != nil {
			return err
		}
		if asGraphviz {
			dot, err := out.PrefixTreeDOT(out.StartSymbol(), "leftfactor")
			if err != nil {
				return err
			}
			fmt.Print(dot)
			return nil
		}
		fmt.Print(out.String())

	case "ll1":
		table, err := ll1.BuildTable(g, false)
		if err != nil {
			return err
		}
		fmt.Print(table.String())

	case "lr1":
		table, err := lr1.BuildTable(g, false)
		if err != nil {
			return err
		}
		if asGraphviz {
			col, err := lr1.Build(table.Augmented)
			if err != nil {
				return err
			}
			fmt.Print(col.DOT("lr1"))
			return nil
		}
		fmt.Printf("built LR(1) table with %s states\n", humanize.Comma(int64(len(table.Action))))

	case "lalr1":
		table, err := lr1.BuildLALR1Table(g, false)
		if err != nil {
			return err
		}
		fmt.Printf("built LALR(1) table with %s states\n", humanize.Comma(int64(len(table.Action))))

	case "slr1":
		table, err := lr1.BuildSLR1Table(g, false)
		if err != nil {
			return err
		}
		fmt.Printf("built SLR(1) table with %s states\n", humanize.Comma(int64(len(table.Action))))

	default:
		return langerr.InvalidInput("unknown analysis: %s", name)
	}

	return nil
}
