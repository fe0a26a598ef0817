package compile

import "github.com/coregx/corebt/ast"

// buildFunc produces one fresh copy of a quantified subgraph's body. It is
// called once per repetition that needs its own physical copy (bounded
// unrolling); the copy already produced by the caller before quantification
// was decided is passed separately and reused as the first repetition, so a
// plain "a" atom or capturing group is never compiled twice for a bare "a"
// or "(a)" with no quantifier at all.
type buildFunc func() (entry, exit StateID)

// compileQuantifier implements the Quantifier composition rules.
// firstEntry/firstExit is the already-compiled body; build produces
// additional independent copies of that same body on demand.
func (c *compiler) compileQuantifier(q *ast.Quantifier, firstEntry, firstExit StateID, build buildFunc) (entry, exit StateID) {
	switch q.Kind {
	case ast.QuantZeroOrMore:
		return c.star(firstEntry, firstExit, q.Lazy)

	case ast.QuantOneOrMore:
		loopEntry, loopExit := build()
		starEntry, starExit := c.star(loopEntry, loopExit, q.Lazy)
		c.connect(firstExit, starEntry)
		return firstEntry, starExit

	case ast.QuantZeroOrOne:
		return c.optional(firstEntry, firstExit, q.Lazy)

	case ast.QuantRange:
		return c.compileRange(q, firstEntry, firstExit, build)

	default:
		return firstEntry, firstExit
	}
}

// star wraps (bodyEntry, bodyExit) with the classic Thompson "*" construct:
// a new split state tries the loop body first (greedy) or the bypass first
// (lazy), and the body's exit loops back to the split.
func (c *compiler) star(bodyEntry, bodyExit StateID, lazy bool) (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})
	if lazy {
		c.connect(entry, exit)
		c.connect(entry, bodyEntry)
	} else {
		c.connect(entry, bodyEntry)
		c.connect(entry, exit)
	}
	c.connect(bodyExit, entry)
	return entry, exit
}

// optional wraps (bodyEntry, bodyExit) with the "?" construct: entry splits
// to either the body then a shared exit, or directly to the exit; order of
// the two edges reflects greediness.
func (c *compiler) optional(bodyEntry, bodyExit StateID, lazy bool) (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})
	if lazy {
		c.connect(entry, exit)
		c.connect(entry, bodyEntry)
	} else {
		c.connect(entry, bodyEntry)
		c.connect(entry, exit)
	}
	c.connect(bodyExit, exit)
	return entry, exit
}

// compileRange implements "{n}", "{n,}", and "{n,m}" by unrolling n
// mandatory copies of the body, then either nothing ("{n}"), a "*" loop of
// one more fresh copy ("{n,}"), or (m-n) chained optional copies ("{n,m}").
func (c *compiler) compileRange(q *ast.Quantifier, firstEntry, firstExit StateID, build buildFunc) (entry, exit StateID) {
	n := q.Lo

	if n == 0 {
		if !q.HasHi {
			return c.star(firstEntry, firstExit, q.Lazy)
		}
		return c.chainOptional(q.Hi, build, q.Lazy)
	}

	entry = firstEntry
	cur := firstExit
	for i := 1; i < n; i++ {
		e, x := build()
		c.connect(cur, e)
		cur = x
	}

	if !q.HasHi {
		loopEntry, loopExit := build()
		starEntry, starExit := c.star(loopEntry, loopExit, q.Lazy)
		c.connect(cur, starEntry)
		return entry, starExit
	}

	extra := q.Hi - n
	if extra == 0 {
		return entry, cur
	}
	tailEntry, tailExit := c.chainOptional(extra, build, q.Lazy)
	c.connect(cur, tailEntry)
	return entry, tailExit
}

// chainOptional builds count independently-skippable copies of the body in
// sequence, each an "optional" wrapper: every optional edge can be skipped,
// and laziness flips the skip/enter order.
func (c *compiler) chainOptional(count int, build buildFunc, lazy bool) (entry, exit StateID) {
	if count == 0 {
		return c.newEdge()
	}
	e, x := build()
	entry, exit = c.optional(e, x, lazy)
	for i := 1; i < count; i++ {
		e, x := build()
		oEntry, oExit := c.optional(e, x, lazy)
		c.connect(exit, oEntry)
		exit = oExit
	}
	return entry, exit
}
