package langutil

import (
	"strings"
	"sync/atomic"
)

// LongestCommonPrefix returns the longest sequence shared as a prefix by
// every one of sls. An empty or single-element input has its one sequence
// (or nil) as the trivial common prefix.
func LongestCommonPrefix[E comparable](sls [][]E) []E {
	if len(sls) == 0 {
		return nil
	}

	prefix := sls[0]
	for _, sl := range sls[1:] {
		prefix = commonPrefix(prefix, sl)
		if len(prefix) == 0 {
			return prefix
		}
	}

	out := make([]E, len(prefix))
	copy(out, prefix)
	return out
}

func commonPrefix[E comparable](a, b []E) []E {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// HasPrefix returns whether sl begins with every element of prefix, in
// order.
func HasPrefix[E comparable](sl []E, prefix []E) bool {
	if len(prefix) > len(sl) {
		return false
	}
	for i := range prefix {
		if sl[i] != prefix[i] {
			return false
		}
	}
	return true
}

// MakeTextList joins items into a natural-language list: "a", "a and b", or
// "a, b, and c".
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		out := make([]string, len(items))
		copy(out, items)
		out[len(out)-1] = "and " + out[len(out)-1]
		return strings.Join(out, ", ")
	}
}

// ArticleFor prefixes noun with "a" or "an" as appropriate, capitalizing the
// article when capitalize is true. Used by diagnostic messages that name an
// expected symbol or token class.
func ArticleFor(noun string, capitalize bool) string {
	article := "a"
	if len(noun) > 0 && strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		article = "an"
	}
	if capitalize {
		article = strings.ToUpper(article[:1]) + article[1:]
	}
	return article + " " + noun
}

var idCounter uint64

// NextID returns a fresh, process-wide monotonically increasing id. Every FA
// state created anywhere in one process draws from this counter, so ids
// generated by independently-built automata never collide even when their
// states are later merged (subset construction, DFA minimization).
func NextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
