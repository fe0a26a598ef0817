// Package corebt implements a small, self-contained regular expression
// engine: a recursive-descent parser (package ast), an epsilon-NFA compiler
// (package compile), and a backtracking matcher with failure memoization
// (package match). Unlike a Thompson/Pike-style simulation, it tracks
// capture groups and backreferences directly by construction rather than
// reconstructing them after the fact, at the cost of worst-case exponential
// backtracking on adversarial patterns — bounded in practice by Options's
// iteration budget.
//
// Basic usage:
//
//	re, err := corebt.Compile(`(\w+)@(\w+)\.com`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok, _ := re.IsMatch("reach me at jane@example.com"); ok {
//	    fmt.Println("matched!")
//	}
package corebt

import (
	"errors"

	"github.com/coregx/corebt/ast"
	"github.com/coregx/corebt/compile"
	"github.com/coregx/corebt/literal"
	"github.com/coregx/corebt/match"
	"github.com/coregx/corebt/prefilter"
)

// Regex is a compiled pattern, ready to search input. A Regex is immutable
// after Compile returns and safe to use concurrently from multiple
// goroutines; each search allocates its own matcher state.
type Regex struct {
	pattern string
	opts    Options
	prog    *compile.Program
	pf      *prefilter.Prefilter
}

// Compile parses and compiles pattern under the default Options. It returns
// a *CompileError if pattern is malformed.
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, Options{})
}

// CompileWithOptions parses and compiles pattern under opts.
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	expr, err := ast.Parse(pattern)
	if err != nil {
		var pe *ast.ParseError
		if errors.As(err, &pe) {
			return nil, &CompileError{Message: pe.Message, Pos: pe.Pos, Pattern: pattern}
		}
		return nil, &CompileError{Message: err.Error(), Pos: -1, Pattern: pattern}
	}

	prog, err := compile.Compile(expr, compile.Options{
		CaseInsensitive:          opts.CaseInsensitive,
		DotMatchesLineSeparators: opts.DotMatchesLineSeparators,
	})
	if err != nil {
		var ce *compile.CompileError
		if errors.As(err, &ce) {
			return nil, &CompileError{Message: ce.Message, Pos: -1, Pattern: pattern}
		}
		return nil, &CompileError{Message: err.Error(), Pos: -1, Pattern: pattern}
	}

	re := &Regex{pattern: pattern, opts: opts, prog: prog}
	if branches, ok := literal.Extract(expr); ok {
		if pf, err := prefilter.Build(branches, opts.CaseInsensitive); err == nil {
			re.pf = pf
		}
	}
	return re, nil
}

// MustCompile is like Compile but panics instead of returning an error. It
// is meant for patterns known to be valid, typically package-level
// variables initialized at startup.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("corebt: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CaptureGroupCount returns the number of capturing groups in the pattern
// (group 0, the whole match, is not counted).
func (re *Regex) CaptureGroupCount() int {
	return re.prog.GroupCount
}

// String returns the pattern this Regex was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

func (re *Regex) matchOptions() match.Options {
	return match.Options{
		Multiline:       re.opts.Multiline,
		CaseInsensitive: re.opts.CaseInsensitive,
		MaxIterations:   re.opts.MaxIterations,
		Prefilter:       re.pf,
	}
}

// IsMatch reports whether input contains at least one match.
func (re *Regex) IsMatch(input string) (bool, error) {
	ok, err := match.IsMatch(re.prog, input, re.matchOptions())
	if err != nil {
		return false, &EngineError{Pattern: re.pattern, Err: err}
	}
	return ok, nil
}

// Matches returns every non-overlapping, left-to-right match of the pattern
// in input, each with its capture-group ranges in declaration order (spec
// §6.2, §8).
func (re *Regex) Matches(input string) ([]match.Match, error) {
	ms, err := match.Search(re.prog, input, re.matchOptions())
	if err != nil {
		return nil, &EngineError{Pattern: re.pattern, Err: err}
	}
	return ms, nil
}
