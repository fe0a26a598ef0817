package match

import (
	"unicode"

	"github.com/coregx/corebt/compile"
	"github.com/coregx/corebt/prefilter"
	"github.com/coregx/corebt/simd"
)

// Options carries the flags that affect preprocessing and resource limits,
// as distinct from compile.Options which affects how individual atoms
// match.
type Options struct {
	// Multiline splits the input into one search window per line, so "^"
	// and each line start coincide.
	Multiline bool

	// CaseInsensitive lowercases the whole input before searching, mirroring
	// compile.Options.CaseInsensitive's lowercasing of pattern atoms.
	CaseInsensitive bool

	// MaxIterations bounds a single inner-match attempt's recursion count.
	// Zero means "use DefaultMaxIterations".
	MaxIterations int

	// Prefilter, when set, narrows the outer loop's candidate start indices
	// to the positions where some literal branch of the pattern begins
	// (package literal/prefilter), instead of probing every index in the
	// window. Only valid when the compiled Program's semantics are exactly
	// "one of these literals, nothing else" — the caller (package corebt)
	// is responsible for only setting this when literal.Extract succeeded
	// against the same pattern that produced Program.
	Prefilter *prefilter.Prefilter
}

// DefaultMaxIterations is used when Options.MaxIterations is zero.
const DefaultMaxIterations = 1_000_000

// foldForSearch lowercases r the same way compile.Options.CaseInsensitive
// folds pattern atoms, so a case-insensitive search compares like to like.
func foldForSearch(r rune) rune { return unicode.ToLower(r) }

// Preprocess lowers input into the rune buffer the matcher searches plus the
// list of windows to search it under: the whole buffer is lowercased up
// front when CaseInsensitive, then split into one window per
// newline-delimited line when Multiline, or left as a single window
// spanning the whole input otherwise.
func Preprocess(input string, opts Options) (full []rune, windows [][2]int) {
	full = []rune(input)
	if opts.CaseInsensitive {
		if simd.IsASCII([]byte(input)) {
			for i, r := range full {
				if r >= 'A' && r <= 'Z' {
					full[i] = r + ('a' - 'A')
				}
			}
		} else {
			for i, r := range full {
				full[i] = foldForSearch(r)
			}
		}
	}

	if !opts.Multiline {
		return full, [][2]int{{0, len(full)}}
	}

	start := 0
	for i, r := range full {
		if r == '\n' {
			windows = append(windows, [2]int{start, i})
			start = i + 1
		}
	}
	windows = append(windows, [2]int{start, len(full)})
	return full, windows
}

// Search runs the full search algorithm over input: preprocess, then for
// each window run the outer per-start-index loop, collecting every
// non-overlapping match left to right. Positions in the returned Matches are
// relative to the original input (window offsets already applied).
func Search(prog *compile.Program, input string, opts Options) ([]Match, error) {
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}

	full, windows := Preprocess(input, opts)

	var all []Match
	for _, w := range windows {
		ms, err := searchWindow(prog, full, w[0], w[1], maxIter, opts.Prefilter)
		if err != nil {
			return nil, err
		}
		all = append(all, ms...)
	}
	return all, nil
}

// IsMatch reports whether prog matches anywhere in input, short-circuiting
// on the first successful attempt rather than collecting every match.
func IsMatch(prog *compile.Program, input string, opts Options) (bool, error) {
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}

	full, windows := Preprocess(input, opts)

	for _, w := range windows {
		for i := w[0]; i <= w[1]; i++ {
			cur := &compile.Cursor{Full: full, WindowStart: w[0], WindowEnd: w[1], Index: i, PrevMatchEnd: w[0]}
			m := newMatcher(prog, maxIter)
			_, ok, err := m.recurse(cur, prog.Start, compile.EmptyContext)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// searchWindow runs the outer loop over a single window: attempt a match at
// each start index in turn, in order, advancing past a
// successful match (and by one on an empty match) so results never overlap.
// When pf is set, candidate start indices come from the literal prefilter
// instead of a plain i++ scan — a pure speed optimization, since the
// backtracking matcher still performs the same confirmation it always would.
func searchWindow(prog *compile.Program, full []rune, windowStart, windowEnd int, maxIter int, pf *prefilter.Prefilter) ([]Match, error) {
	var matches []Match
	var enc prefilter.Offsets
	if pf != nil {
		enc = prefilter.Encode(full, windowStart, windowEnd)
	}

	i := windowStart
	prevEnd := windowStart
	for i <= windowEnd {
		cur := &compile.Cursor{Full: full, WindowStart: windowStart, WindowEnd: windowEnd, Index: i, PrevMatchEnd: prevEnd}
		m := newMatcher(prog, maxIter)

		out, ok, err := m.recurse(cur, prog.Start, compile.EmptyContext)
		if err != nil {
			return nil, err
		}
		if !ok {
			i = advance(i+1, pf, enc, windowStart, windowEnd)
			continue
		}

		ranges := out.ctx.FinalRanges(prog.GroupCount)
		groups := make([]Range, len(ranges))
		for g, r := range ranges {
			groups[g] = Range{Start: r[0], End: r[1]}
		}
		matches = append(matches, Match{
			Range:  Range{Start: i, End: out.endIndex},
			Groups: groups,
		})
		prevEnd = out.endIndex

		if out.endIndex == i {
			i = advance(i+1, pf, enc, windowStart, windowEnd)
		} else {
			i = advance(out.endIndex, pf, enc, windowStart, windowEnd)
		}
	}

	return matches, nil
}

// advance computes the next start index to try after an attempt at prev:
// floor is the smallest acceptable next index (i+1 on an empty match, or
// the end of the match just found). Without a prefilter this is just floor;
// with one, it is the first literal-branch candidate at or after floor, or
// past the window's end if none remains.
func advance(floor int, pf *prefilter.Prefilter, enc prefilter.Offsets, windowStart, windowEnd int) int {
	if pf == nil {
		return floor
	}
	cand, ok := pf.NextCandidate(enc, floor-windowStart)
	if !ok {
		return windowEnd + 1 // no candidate left: terminates the loop
	}
	return cand + windowStart
}
