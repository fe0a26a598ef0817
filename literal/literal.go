// Package literal recognizes patterns whose top-level structure is nothing
// but a plain-character alternation — "cat|dog|bird" — so the search can be
// accelerated by a multi-literal prefilter (package prefilter) instead of
// probing every input position with the full backtracking matcher.
package literal

import (
	"strings"

	"github.com/coregx/corebt/ast"
)

// Extract returns the branches of expr as plain strings, and true, if and
// only if expr's entire top-level shape is a right-leaning chain of
// Alternation nodes whose every leaf is a run of unquantified, non-negated
// single characters (a Match atom with MatchItemKind == KindCharacter).
// Anything else — a quantifier, a group, a character class,
// a backreference — disqualifies the whole pattern, since the prefilter can
// only ever be a "might match here" signal for literal text.
//
// A single literal (no "|" at all) is not worth a prefilter and is reported
// as ok=false.
func Extract(expr *ast.Expression) (branches []string, ok bool) {
	if expr.StartAnchored {
		return nil, false
	}
	var out []string
	if !collect(expr, &out) {
		return nil, false
	}
	if len(out) < 2 {
		return nil, false
	}
	return out, true
}

func collect(e *ast.Expression, out *[]string) bool {
	if len(e.Items) == 1 && e.Items[0].Alternation != nil {
		alt := e.Items[0].Alternation
		return collect(&alt.Left, out) && collect(&alt.Right, out)
	}
	lit, ok := literalText(e)
	if !ok {
		return false
	}
	*out = append(*out, lit)
	return true
}

func literalText(e *ast.Expression) (string, bool) {
	var sb strings.Builder
	for i := range e.Items {
		item := &e.Items[i]
		if item.Match == nil || item.Match.Quantifier != nil {
			return "", false
		}
		mi := item.Match.Item
		if mi.Kind != ast.KindCharacter || mi.Negated {
			return "", false
		}
		sb.WriteRune(mi.Char)
	}
	return sb.String(), true
}
