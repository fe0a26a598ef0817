package corebt

// Options controls how a pattern is compiled and how it searches input. The
// zero value is the default: case-sensitive, single-line, "." excludes
// line separators.
type Options struct {
	// CaseInsensitive lowercases pattern atoms and input alike before
	// matching. It does not perform full Unicode case folding — only
	// simple lowercasing.
	CaseInsensitive bool

	// Multiline splits the input into one search window per line, so "^"
	// matches at every line start rather than only at index 0.
	Multiline bool

	// DotMatchesLineSeparators makes "." match "\n" as well as every other
	// character. Off by default, matching the grammar's plain "any
	// character except newline" reading of ".".
	DotMatchesLineSeparators bool

	// MaxIterations bounds a single inner-match attempt's recursion count.
	// Zero uses match.DefaultMaxIterations.
	MaxIterations int
}
