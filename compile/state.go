// Package compile lowers a parsed pattern (package ast) into a state graph:
// an epsilon-transitioning NFA augmented with side-effecting transitions and
// group-boundary metadata. The graph is a pure function of the AST and,
// once built, is immutable and safe to share across goroutines.
package compile

import (
	"github.com/coregx/corebt/internal/conv"
)

// StateID identifies a state within a Program's state arena.
type StateID uint32

// InvalidState marks an uninitialized or absent StateID.
const InvalidState StateID = 0xFFFFFFFF

// Info tags a state as a capturing-group boundary. A state is at most one
// of GroupStart or GroupClose for at most one group; IsGroupStart and
// IsGroupClose are mutually exclusive.
type Info struct {
	IsGroupStart bool
	IsGroupClose bool
	GroupIndex   int // meaningful iff IsGroupStart or IsGroupClose
}

// MatchResult is what a Transition's Match function reports: whether the
// transition may be taken from the current cursor position, and how many
// runes it consumes. Ordinary atoms consume exactly one rune; epsilon
// transitions (anchors, group boundaries, plain sequencing) consume zero;
// backreferences are the one variable-length exception: a single
// character-consuming transition whose length depends on the captured text.
type MatchResult struct {
	OK     bool
	Length int
}

// Transition is one outgoing edge of a State. Match decides whether the
// edge may be taken; Perform computes the context the matcher should carry
// forward if it is. Transitions from the same state are tried in slice
// order — that order is the entire encoding of greediness, laziness, and
// alternation priority.
type Transition struct {
	Match     func(cur *Cursor, ctx Context) MatchResult
	Perform   func(cur *Cursor, ctx Context) Context
	Target    StateID
	IsEpsilon bool
}

// State is one node of the compiled graph.
type State struct {
	ID          StateID
	Info        Info
	Transitions []Transition
	IsEnd       bool
}

// Program is the compiled form of a pattern: an arena of states, the start
// state, and the number of capturing groups it declares. Group boundaries
// are not looked up externally — every group-start and group-close state
// carries the context-updating side effect for its own group directly on
// its outgoing transition (see compileGroup), so a successful branch's
// final Context already holds every group's last-iteration range.
type Program struct {
	States     []State
	Start      StateID
	GroupCount int
}

func (p *Program) State(id StateID) *State {
	return &p.States[id]
}

// builder accumulates states into an arena during compilation.
type builder struct {
	states []State
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) addState(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.ID = id
	b.states = append(b.states, s)
	return id
}

// epsilon adds a plain, always-true, zero-width transition to target.
func epsilon(target StateID) Transition {
	return Transition{
		Match:     func(*Cursor, Context) MatchResult { return MatchResult{OK: true, Length: 0} },
		Perform:   identityPerform,
		Target:    target,
		IsEpsilon: true,
	}
}

func identityPerform(_ *Cursor, ctx Context) Context { return ctx }
