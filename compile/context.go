package compile

import (
	"sort"
	"strconv"
	"strings"
)

// groupRange is one capturing group's state on a branch: where it started,
// and — once its closing state has been passed — where it ended.
type groupRange struct {
	Start, End int
	Closed     bool
}

// Context is the immutable per-branch state threaded through a single
// traversal of the state graph. For every capturing group the branch has
// entered, it records the start index; once the branch has also passed the
// group's closing state, it records the end index too. Because each new
// pass through a quantified group produces a fresh Context via
// WithStart/WithEnd, the Context belonging to the eventual winning branch
// naturally holds each group's *last* iteration without any separate
// mutable bookkeeping.
//
// Context is also folded into the memoization cache key, so two branches
// reaching the same (index, state) with different group histories are
// never conflated — required for correctness with quantified capturing
// groups and for backreferences, which read a group's captured text
// directly out of Context.
type Context struct {
	groups map[int]groupRange
}

// EmptyContext is the context at the start of every top-level match
// attempt: no groups touched.
var EmptyContext = Context{}

// WithStart returns a new Context equal to ctx but with group opened at idx.
func (ctx Context) WithStart(group, idx int) Context {
	next := ctx.clone()
	next.groups[group] = groupRange{Start: idx}
	return next
}

// WithEnd returns a new Context equal to ctx but with group closed at idx.
// The group must already have been opened via WithStart.
func (ctx Context) WithEnd(group, idx int) Context {
	next := ctx.clone()
	g := next.groups[group]
	g.End = idx
	g.Closed = true
	next.groups[group] = g
	return next
}

func (ctx Context) clone() Context {
	next := make(map[int]groupRange, len(ctx.groups)+1)
	for k, v := range ctx.groups {
		next[k] = v
	}
	return Context{groups: next}
}

// Range reports group's captured range on this branch, if it has closed.
func (ctx Context) Range(group int) (start, end int, closed bool) {
	g, ok := ctx.groups[group]
	if !ok || !g.Closed {
		return 0, 0, false
	}
	return g.Start, g.End, true
}

// Start reports the index at which group was opened on this branch, and
// whether it has been opened at all (open or closed).
func (ctx Context) Start(group int) (int, bool) {
	g, ok := ctx.groups[group]
	if !ok {
		return 0, false
	}
	return g.Start, true
}

// FinalRanges returns, for groups 1..count, the captured range or (-1,-1)
// if the group never closed on this branch — the shape a Match's ordered
// capture list wants.
func (ctx Context) FinalRanges(count int) [][2]int {
	out := make([][2]int, count)
	for i := 0; i < count; i++ {
		g := i + 1
		if start, end, closed := ctx.Range(g); closed {
			out[i] = [2]int{start, end}
		} else {
			out[i] = [2]int{-1, -1}
		}
	}
	return out
}

// Key returns a canonical, comparable representation of ctx suitable for
// use as a map key component. Group indices are small and few per pattern,
// so a sorted textual encoding is cheap enough and keeps the cache key a
// plain comparable string rather than requiring a custom hash.
func (ctx Context) Key() string {
	if len(ctx.groups) == 0 {
		return ""
	}
	ids := make([]int, 0, len(ctx.groups))
	for g := range ctx.groups {
		ids = append(ids, g)
	}
	sort.Ints(ids)
	var b strings.Builder
	for _, g := range ids {
		r := ctx.groups[g]
		b.WriteString(strconv.Itoa(g))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.Start))
		b.WriteByte('-')
		if r.Closed {
			b.WriteString(strconv.Itoa(r.End))
		} else {
			b.WriteByte('?')
		}
		b.WriteByte(',')
	}
	return b.String()
}
