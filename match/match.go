// Package match implements a backtracking NFA interpreter: given a compiled
// state graph (package compile) and an input string, it produces the
// sequence of non-overlapping matches in left-to-right order, with
// capture-group ranges attached in declaration order.
package match

// Range is a half-open [Start, End) span of rune indices into the searched
// input. An unmatched capture group is reported as {-1, -1}.
type Range struct {
	Start, End int
}

// Match is one match of a pattern against an input: the full matched range
// plus one Range per capture group, in declaration order (group 1 first).
type Match struct {
	Range
	Groups []Range
}
