// Package prefilter accelerates the outer search loop (package match) for
// patterns whose top level is a plain-literal alternation (package literal)
// by locating candidate start positions with an Aho-Corasick automaton
// before handing each one to the backtracking matcher for full
// confirmation — a "cheap filter, expensive engine confirms" split, with
// the backtracking matcher itself standing in as the confirming engine.
package prefilter

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Prefilter finds candidate rune-indexed start positions for a fixed set of
// literal alternatives inside rune-indexed input.
type Prefilter struct {
	auto *ahocorasick.Automaton
}

// Build compiles branches into an automaton. When caseInsensitive is set,
// branches are lowercased to match the matcher's own practice of
// lowercasing both pattern atoms and input up front.
func Build(branches []string, caseInsensitive bool) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, b := range branches {
		if caseInsensitive {
			b = strings.ToLower(b)
		}
		builder.AddPattern([]byte(b))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{auto: auto}, nil
}

// Offsets holds a rune slice's UTF-8 byte form (as built by Encode), plus the byte
// offset at which each rune begins — the translation layer between the
// matcher's rune-indexed Cursor and the automaton's byte-indexed haystack.
type Offsets struct {
	bytes     []byte
	runeStart []int // runeStart[i] = byte offset where rune i begins; len = len(runes)+1, last entry = len(bytes)
}

// Encode prepares runes[lo:hi] for automaton search.
func Encode(runes []rune, lo, hi int) Offsets {
	o := Offsets{runeStart: make([]int, hi-lo+1)}
	for i := lo; i < hi; i++ {
		o.runeStart[i-lo] = len(o.bytes)
		o.bytes = append(o.bytes, string(runes[i])...)
	}
	o.runeStart[hi-lo] = len(o.bytes)
	return o
}

func (o Offsets) runeIndexForByte(b int) int {
	i := sort.SearchInts(o.runeStart, b)
	return i
}

// NextCandidate reports the rune index of the next position at or after
// fromRune (relative to the window Encode built o from) where some literal
// branch begins, or ok=false if none remains.
func (p *Prefilter) NextCandidate(o Offsets, fromRune int) (runeIndex int, ok bool) {
	if fromRune < 0 || fromRune >= len(o.runeStart) {
		return 0, false
	}
	m := p.auto.Find(o.bytes, o.runeStart[fromRune])
	if m == nil {
		return 0, false
	}
	return o.runeIndexForByte(m.Start), true
}
