package compile

import (
	"fmt"

	"github.com/coregx/corebt/ast"
)

// CompileError wraps a structural problem found only during compilation
// (currently: a backreference to a group index that never appears in the
// pattern at all, reported at compile time rather than left to fail silently
// at match time).
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string { return e.Message }

// Compile lowers expr into a Program. Each AST node produces a subgraph
// with a single entry and a single exit state; Compile wires the top-level
// subgraph to one shared end state and, if the pattern was anchored with
// "^", prefixes a start-of-window anchor edge.
func Compile(expr *ast.Expression, opts Options) (*Program, error) {
	groupCount := ast.CaptureGroupCount(expr)
	if maxRef := ast.MaxBackreferenceIndex(expr); maxRef > groupCount {
		return nil, &CompileError{Message: fmt.Sprintf("backreference to non-existent group %d", maxRef)}
	}

	b := newBuilder()
	c := &compiler{b: b, opts: opts}

	entry, exit := c.compileExpression(expr)

	end := b.addState(State{IsEnd: true})
	b.states[exit].Transitions = append(b.states[exit].Transitions, epsilon(end))

	start := entry
	if expr.StartAnchored {
		anchor := b.addState(State{})
		b.states[anchor].Transitions = append(b.states[anchor].Transitions, Transition{
			Match:     func(cur *Cursor, _ Context) MatchResult { return MatchResult{OK: cur.AtWindowStart()} },
			Perform:   identityPerform,
			Target:    entry,
			IsEpsilon: true,
		})
		start = anchor
	}

	return &Program{
		States:     b.states,
		Start:      start,
		GroupCount: groupCount,
	}, nil
}

type compiler struct {
	b    *builder
	opts Options
}

func (c *compiler) newEdge() (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})
	c.b.states[entry].Transitions = append(c.b.states[entry].Transitions, epsilon(exit))
	return entry, exit
}

func (c *compiler) connect(from, to StateID) {
	c.b.states[from].Transitions = append(c.b.states[from].Transitions, epsilon(to))
}

// compileExpression handles Expression ::= ExpressionItem+ by chaining each
// item's subgraph into the next by epsilon. An empty Expression compiles to
// a single epsilon edge, matching only the empty string.
func (c *compiler) compileExpression(expr *ast.Expression) (entry, exit StateID) {
	if len(expr.Items) == 0 {
		return c.newEdge()
	}

	entry, prevExit := c.compileExpressionItem(&expr.Items[0])
	for i := 1; i < len(expr.Items); i++ {
		itemEntry, itemExit := c.compileExpressionItem(&expr.Items[i])
		c.connect(prevExit, itemEntry)
		prevExit = itemExit
	}
	return entry, prevExit
}

func (c *compiler) compileExpressionItem(item *ast.ExpressionItem) (entry, exit StateID) {
	switch {
	case item.Match != nil:
		return c.compileMatch(item.Match)
	case item.Group != nil:
		return c.compileGroup(item.Group)
	case item.Backreference != nil:
		return c.compileBackreference(item.Backreference)
	case item.Alternation != nil:
		return c.compileAlternation(item.Alternation)
	default:
		return c.newEdge()
	}
}

// compileAlternation implements the Alternation rule: a new entry splits
// (in order) to the left and right branches; both rejoin at a new
// shared exit. The left branch is always tried first (its epsilon edge is
// appended to the entry state's transition list before the right's).
func (c *compiler) compileAlternation(alt *ast.Alternation) (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})

	leftEntry, leftExit := c.compileExpression(&alt.Left)
	rightEntry, rightExit := c.compileExpression(&alt.Right)

	c.connect(entry, leftEntry)
	c.connect(entry, rightEntry)
	c.connect(leftExit, exit)
	c.connect(rightExit, exit)

	return entry, exit
}

// compileGroup wraps the inner subgraph between a group-start and a
// group-close state, then applies g's quantifier (if any) around that one
// body. Each state's own Perform closure records the group's start/end
// directly into Context, so a quantified group's repeated physical copies
// each track their own capture independently — no external close-state
// table is needed.
func (c *compiler) compileGroup(g *ast.Group) (entry, exit StateID) {
	entry, exit = c.compileGroupBody(g)
	if g.Quantifier != nil {
		return c.compileQuantifier(g.Quantifier, entry, exit, func() (StateID, StateID) { return c.compileGroupBody(g) })
	}
	return entry, exit
}

// compileGroupBody builds one fresh, unquantified copy of g's group-start /
// inner / group-close subgraph. It never looks at g.Quantifier: that field
// is handled exactly once, by compileGroup's caller, so repeated copies
// built on demand by a quantifier's build func (see compileQuantifier)
// never re-apply the quantifier to themselves.
func (c *compiler) compileGroupBody(g *ast.Group) (entry, exit StateID) {
	innerEntry, innerExit := c.compileExpression(&g.Inner)

	if !g.Capturing {
		return innerEntry, innerExit
	}

	startState := c.b.addState(State{Info: Info{IsGroupStart: true, GroupIndex: g.Index}})
	closeState := c.b.addState(State{Info: Info{IsGroupClose: true, GroupIndex: g.Index}})

	idx := g.Index
	c.b.states[startState].Transitions = append(c.b.states[startState].Transitions, Transition{
		Match:   func(*Cursor, Context) MatchResult { return MatchResult{OK: true} },
		Perform: func(cur *Cursor, ctx Context) Context { return ctx.WithStart(idx, cur.Index) },
		Target:  innerEntry, IsEpsilon: true,
	})
	c.connect(innerExit, closeState)

	exitState := c.b.addState(State{})
	c.b.states[closeState].Transitions = append(c.b.states[closeState].Transitions, Transition{
		Match:   func(*Cursor, Context) MatchResult { return MatchResult{OK: true} },
		Perform: func(cur *Cursor, ctx Context) Context { return ctx.WithEnd(idx, cur.Index) },
		Target:  exitState, IsEpsilon: true,
	})

	return startState, exitState
}

// compileMatch handles a single atom, optionally quantified.
func (c *compiler) compileMatch(m *ast.Match) (entry, exit StateID) {
	entry, exit = c.compileAtom(m.Item)
	if m.Quantifier != nil {
		return c.compileQuantifier(m.Quantifier, entry, exit, func() (StateID, StateID) {
			return c.compileAtom(m.Item)
		})
	}
	return entry, exit
}

// compileAtom builds the single consuming transition for a MatchItem.
func (c *compiler) compileAtom(item ast.MatchItem) (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})
	pred := matchItemPredicate(item, c.opts)
	c.b.states[entry].Transitions = append(c.b.states[entry].Transitions, Transition{
		Match: func(cur *Cursor, _ Context) MatchResult {
			r, ok := cur.Peek()
			if !ok || !pred(r) {
				return MatchResult{OK: false}
			}
			return MatchResult{OK: true, Length: 1}
		},
		Perform: identityPerform,
		Target:  exit,
	})
	return entry, exit
}

// compileBackreference implements the Backreference rule: a single
// variable-length transition that reads group k's captured text out of
// Context and requires the input at the cursor to match it literally. A
// group that has not yet closed on this branch yields an empty match rather
// than failing outright.
func (c *compiler) compileBackreference(b *ast.Backreference) (entry, exit StateID) {
	entry = c.b.addState(State{})
	exit = c.b.addState(State{})
	group := b.Index
	caseInsensitive := c.opts.CaseInsensitive
	c.b.states[entry].Transitions = append(c.b.states[entry].Transitions, Transition{
		Match: func(cur *Cursor, ctx Context) MatchResult {
			start, end, closed := ctx.Range(group)
			if !closed {
				return MatchResult{OK: true, Length: 0}
			}
			length := end - start
			if cur.Index+length > cur.WindowEnd {
				return MatchResult{OK: false}
			}
			for i := 0; i < length; i++ {
				want, got := cur.Full[start+i], cur.Full[cur.Index+i]
				if foldRune(want, caseInsensitive) != foldRune(got, caseInsensitive) {
					return MatchResult{OK: false}
				}
			}
			return MatchResult{OK: true, Length: length}
		},
		Perform: identityPerform,
		Target:  exit,
	})
	return entry, exit
}
