package match

import "github.com/coregx/corebt/compile"

// cacheKey identifies one (position, state, capture-history) triple during a
// single inner-match attempt — the unit of memoization.
type cacheKey struct {
	index int
	state compile.StateID
	ctx   string
}

// matcher runs one inner-match attempt: a single DFS from a single start
// index, with its own fresh memoization cache. It is constructed fresh per
// attempt by the outer search loop in search.go.
type matcher struct {
	prog       *compile.Program
	maxIter    int
	iterations int

	// failed memoizes (index, state, ctx) triples already proven to lead
	// nowhere on this attempt. Only failures are cached: a successful
	// branch's result is returned immediately up the stack rather than
	// looked up again, so there is no second read a cached success would
	// serve.
	failed map[cacheKey]bool

	// inProgress marks triples currently open on the DFS call stack. A
	// quantified subpattern whose body can match zero width (e.g. "(a?)*")
	// compiles to a cyclic epsilon graph; revisiting an in-progress triple
	// means the loop has made no forward progress in index, state, or
	// context since it was last seen, so it can never terminate except by
	// failing. This is not itself part of the memoization cache: it is
	// cleared when its call frame returns, successful or not.
	inProgress map[cacheKey]bool
}

func newMatcher(prog *compile.Program, maxIter int) *matcher {
	return &matcher{
		prog:       prog,
		maxIter:    maxIter,
		failed:     make(map[cacheKey]bool),
		inProgress: make(map[cacheKey]bool),
	}
}

// outcome is what a successful recurse call reports: where the match ended
// and the capture context in effect at that point.
type outcome struct {
	endIndex int
	ctx      compile.Context
}

// recurse tries state's transitions in order, consuming input and branching
// on success, backtracking the cursor on failure, until an end state is
// reached or every transition is exhausted.
func (m *matcher) recurse(cur *compile.Cursor, state compile.StateID, ctx compile.Context) (outcome, bool, error) {
	m.iterations++
	if m.iterations > m.maxIter {
		return outcome{}, false, ErrTooManyIterations
	}

	st := m.prog.State(state)
	if st.IsEnd {
		return outcome{endIndex: cur.Index, ctx: ctx}, true, nil
	}

	key := cacheKey{index: cur.Index, state: state, ctx: ctx.Key()}
	if m.failed[key] || m.inProgress[key] {
		return outcome{}, false, nil
	}

	m.inProgress[key] = true
	defer delete(m.inProgress, key)

	savedIndex := cur.Index
	for _, tr := range st.Transitions {
		res := tr.Match(cur, ctx)
		if !res.OK {
			continue
		}
		nextCtx := tr.Perform(cur, ctx)
		cur.Index = savedIndex + res.Length

		out, ok, err := m.recurse(cur, tr.Target, nextCtx)
		if err != nil {
			cur.Index = savedIndex
			return outcome{}, false, err
		}
		if ok {
			return out, true, nil
		}
		cur.Index = savedIndex
	}

	m.failed[key] = true
	return outcome{}, false, nil
}
